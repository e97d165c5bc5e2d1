package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vango-dev/extstats/internal/errors"
)

const (
	// ConfigFileName is the name of the JSON configuration file.
	ConfigFileName = "extstats.json"

	// TOMLConfigFileName is the name of the TOML configuration file.
	TOMLConfigFileName = "extstats.toml"

	// DefaultPort is the default server port.
	DefaultPort = 8080

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default build output directory.
	DefaultOutput = "site"

	// DefaultPerPage is the number of extensions per list page.
	DefaultPerPage = 100

	// DefaultTitle is the site title.
	DefaultTitle = "Chrome Extensions Archive"

	// DefaultGitHubURL is the project link shown on every page.
	DefaultGitHubURL = "https://github.com/mdamien/chrome-extensions-archive"

	// DefaultSourceViewerURL is prefixed to a file's storage URL for
	// "view source" links.
	DefaultSourceViewerURL = "/source/crxviewer.html?crx="

	// DefaultStyleSheet is the stylesheet linked from every page.
	DefaultStyleSheet = "/style.css"

	// DefaultRegion is the default S3 region.
	DefaultRegion = "us-east-1"
)

// Config represents the complete extstats configuration.
type Config struct {
	// Site contains page content settings.
	Site SiteConfig `json:"site,omitempty" toml:"site,omitempty"`

	// Build contains static build settings.
	Build BuildConfig `json:"build,omitempty" toml:"build,omitempty"`

	// Serve contains HTTP server settings.
	Serve ServeConfig `json:"serve,omitempty" toml:"serve,omitempty"`

	// S3 contains the optional S3 publishing target.
	S3 S3Config `json:"s3,omitempty" toml:"s3,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// SiteConfig contains page content settings.
type SiteConfig struct {
	// Title is the site title, shown in <title> and the page header.
	Title string `json:"title,omitempty" toml:"title,omitempty"`

	// GitHubURL is the project link shown under the header.
	GitHubURL string `json:"githubUrl,omitempty" toml:"githubUrl,omitempty"`

	// SourceViewerURL is prefixed to storage URLs for "view source" links.
	SourceViewerURL string `json:"sourceViewerUrl,omitempty" toml:"sourceViewerUrl,omitempty"`

	// StyleSheet is the stylesheet URL.
	StyleSheet string `json:"styleSheet,omitempty" toml:"styleSheet,omitempty"`
}

// BuildConfig contains static build settings.
type BuildConfig struct {
	// Data is the path to the extension data JSON file.
	Data string `json:"data,omitempty" toml:"data,omitempty"`

	// Output is the output directory for pages.
	Output string `json:"output,omitempty" toml:"output,omitempty"`

	// PerPage is the number of extensions on each list page.
	PerPage int `json:"perPage,omitempty" toml:"perPage,omitempty"`
}

// ServeConfig contains HTTP server settings.
type ServeConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" toml:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" toml:"port,omitempty"`

	// Static is a directory of assets (style.css, the source viewer)
	// served for paths that are not pages. Empty disables it.
	Static string `json:"static,omitempty" toml:"static,omitempty"`
}

// S3Config contains the S3 publishing target. Publishing is enabled when
// Bucket is set.
type S3Config struct {
	// Bucket is the S3 bucket name.
	Bucket string `json:"bucket,omitempty" toml:"bucket,omitempty"`

	// Prefix is prepended to every object key (e.g., "archive/").
	Prefix string `json:"prefix,omitempty" toml:"prefix,omitempty"`

	// Region is the AWS region.
	Region string `json:"region,omitempty" toml:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, for S3-compatible stores.
	Endpoint string `json:"endpoint,omitempty" toml:"endpoint,omitempty"`

	// UsePathStyle forces path-style bucket addressing.
	UsePathStyle bool `json:"usePathStyle,omitempty" toml:"usePathStyle,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from the specified directory. It looks for
// extstats.json first, then extstats.toml.
func Load(dir string) (*Config, error) {
	jsonPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(jsonPath); err == nil {
		return LoadFile(jsonPath)
	}
	return LoadFile(filepath.Join(dir, TOMLConfigFileName))
}

// LoadOrDefault is like Load but returns defaults when no configuration
// file exists.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.Is(err, os.ErrNotExist) {
		return New(), nil
	}
	return cfg, err
}

// LoadFile reads configuration from the specified file path. The format is
// chosen by extension: .toml is TOML, anything else JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("C001").
				WithDetail("No configuration file found at " + path).
				Wrap(err)
		}
		return nil, errors.New("C001").Wrap(err)
	}

	cfg := &Config{}
	if isTOML(path) {
		err = decodeTOML(path, data, cfg)
	} else {
		err = decodeJSON(path, data, cfg)
	}
	if err != nil {
		return nil, err
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

func decodeJSON(path string, data []byte, cfg *Config) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		e := errors.New("C002").
			WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON").
			Wrap(err)
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			e.WithOffset(path, syntaxErr.Offset)
		}
		return e
	}
	return nil
}

func decodeTOML(path string, data []byte, cfg *Config) error {
	meta, err := toml.Decode(string(data), cfg)
	if err != nil {
		e := errors.New("C002").
			WithSuggestion("Check that " + filepath.Base(path) + " is valid TOML").
			Wrap(err)
		var parseErr toml.ParseError
		if errors.As(err, &parseErr) {
			e.WithLocation(path, parseErr.Position.Line, 0)
		}
		return e
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return errors.New("C003").
			WithDetail("Unknown key " + undecoded[0].String() + " in " + filepath.Base(path))
	}
	return nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path, as TOML when the
// path ends in .toml and JSON otherwise.
func (c *Config) SaveTo(path string) error {
	var buf bytes.Buffer
	if isTOML(path) {
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return errors.New("C001").Wrap(err)
		}
	} else {
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return errors.New("C001").Wrap(err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.New("C001").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Site.Title == "" {
		c.Site.Title = DefaultTitle
	}
	if c.Site.GitHubURL == "" {
		c.Site.GitHubURL = DefaultGitHubURL
	}
	if c.Site.SourceViewerURL == "" {
		c.Site.SourceViewerURL = DefaultSourceViewerURL
	}
	if c.Site.StyleSheet == "" {
		c.Site.StyleSheet = DefaultStyleSheet
	}

	if c.Build.Output == "" {
		c.Build.Output = DefaultOutput
	}
	if c.Build.PerPage == 0 {
		c.Build.PerPage = DefaultPerPage
	}

	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}

	if c.S3.Region == "" {
		c.S3.Region = DefaultRegion
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return errors.New("C003").
			WithDetail("serve.port must be between 0 and 65535")
	}
	if c.Build.PerPage < 1 {
		return errors.New("C003").
			WithDetail("build.perPage must be at least 1")
	}
	if c.S3.Prefix != "" && c.S3.Bucket == "" {
		return errors.New("C003").
			WithDetail("s3.prefix is set but s3.bucket is empty").
			WithSuggestion("Set s3.bucket or remove s3.prefix")
	}
	return nil
}

// ServeAddress returns the listen address for the server.
func (c *Config) ServeAddress() string {
	return c.Serve.Host + ":" + strconv.Itoa(c.Serve.Port)
}

// OutputPath returns the absolute path to the build output directory,
// resolved against the config file's directory.
func (c *Config) OutputPath() string {
	return c.resolve(c.Build.Output)
}

// DataPath returns the data file path resolved against the config file's
// directory.
func (c *Config) DataPath() string {
	if c.Build.Data == "" {
		return ""
	}
	return c.resolve(c.Build.Data)
}

// StaticPath returns the static asset directory resolved against the
// config file's directory, or "" when unset.
func (c *Config) StaticPath() string {
	if c.Serve.Static == "" {
		return ""
	}
	return c.resolve(c.Serve.Static)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if dir := c.Dir(); dir != "" {
		return filepath.Join(dir, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
