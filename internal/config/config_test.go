package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/extstats/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func errorCode(err error) string {
	var e *errors.Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Site.Title != DefaultTitle {
		t.Errorf("Site.Title = %q, want %q", cfg.Site.Title, DefaultTitle)
	}
	if cfg.Site.SourceViewerURL != DefaultSourceViewerURL {
		t.Errorf("Site.SourceViewerURL = %q", cfg.Site.SourceViewerURL)
	}
	if cfg.Build.PerPage != DefaultPerPage {
		t.Errorf("Build.PerPage = %d, want %d", cfg.Build.PerPage, DefaultPerPage)
	}
	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d, want %d", cfg.Serve.Port, DefaultPort)
	}
	if cfg.S3.Region != DefaultRegion {
		t.Errorf("S3.Region = %q, want %q", cfg.S3.Region, DefaultRegion)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `{
  "site": {"title": "My Archive"},
  "build": {"data": "exts.json", "perPage": 25},
  "serve": {"port": 9000, "static": "assets"}
}`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Site.Title != "My Archive" {
		t.Errorf("Site.Title = %q", cfg.Site.Title)
	}
	if cfg.Site.GitHubURL != DefaultGitHubURL {
		t.Errorf("defaults should fill GitHubURL, got %q", cfg.Site.GitHubURL)
	}
	if cfg.Build.PerPage != 25 {
		t.Errorf("Build.PerPage = %d, want 25", cfg.Build.PerPage)
	}
	if cfg.ServeAddress() != "localhost:9000" {
		t.Errorf("ServeAddress() = %q", cfg.ServeAddress())
	}
	if cfg.DataPath() != filepath.Join(dir, "exts.json") {
		t.Errorf("DataPath() = %q", cfg.DataPath())
	}
	if cfg.OutputPath() != filepath.Join(dir, DefaultOutput) {
		t.Errorf("OutputPath() = %q", cfg.OutputPath())
	}
	if cfg.StaticPath() != filepath.Join(dir, "assets") {
		t.Errorf("StaticPath() = %q", cfg.StaticPath())
	}
	if cfg.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", cfg.Dir(), dir)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, TOMLConfigFileName, `
[build]
data = "/abs/exts.json"
perPage = 10

[s3]
bucket = "archive"
prefix = "pages/"
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Build.PerPage != 10 {
		t.Errorf("Build.PerPage = %d, want 10", cfg.Build.PerPage)
	}
	if cfg.DataPath() != "/abs/exts.json" {
		t.Errorf("DataPath() = %q", cfg.DataPath())
	}
	if cfg.S3.Bucket != "archive" || cfg.S3.Prefix != "pages/" {
		t.Errorf("S3 = %+v", cfg.S3)
	}
}

func TestLoadPrefersJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, `{"serve": {"port": 1}}`)
	writeFile(t, dir, TOMLConfigFileName, "[serve]\nport = 2\n")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Serve.Port != 1 {
		t.Errorf("Serve.Port = %d, want 1 (from JSON)", cfg.Serve.Port)
	}
}

func TestLoadMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir)
	if code := errorCode(err); code != "C001" {
		t.Errorf("code = %q, want C001 (%v)", code, err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist: %v", err)
	}

	cfg, err := LoadOrDefault(dir)
	if err != nil {
		t.Fatalf("LoadOrDefault() error = %v", err)
	}
	if cfg.Serve.Port != DefaultPort {
		t.Errorf("Serve.Port = %d", cfg.Serve.Port)
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode string
		wantLine int
	}{
		{
			name:     "json syntax",
			file:     ConfigFileName,
			content:  "{\n  \"serve\": {\"port\": 1,}\n}",
			wantCode: "C002",
			wantLine: 2,
		},
		{
			name:     "json unknown field",
			file:     ConfigFileName,
			content:  `{"server": {}}`,
			wantCode: "C002",
		},
		{
			name:     "toml syntax",
			file:     TOMLConfigFileName,
			content:  "[serve]\nport = = 3\n",
			wantCode: "C002",
			wantLine: 2,
		},
		{
			name:     "toml unknown key",
			file:     TOMLConfigFileName,
			content:  "[serve]\nportt = 3\n",
			wantCode: "C003",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, tt.file, tt.content)

			_, err := Load(dir)
			if code := errorCode(err); code != tt.wantCode {
				t.Fatalf("code = %q, want %q (%v)", code, tt.wantCode, err)
			}
			if tt.wantLine == 0 {
				return
			}
			var e *errors.Error
			errors.As(err, &e)
			if e.Location == nil || e.Location.Line != tt.wantLine {
				t.Errorf("Location = %v, want line %d", e.Location, tt.wantLine)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "port too high", mutate: func(c *Config) { c.Serve.Port = 70000 }, wantErr: "serve.port"},
		{name: "per page zero", mutate: func(c *Config) { c.Build.PerPage = 0 }, wantErr: "build.perPage"},
		{name: "prefix without bucket", mutate: func(c *Config) { c.S3.Prefix = "x/" }, wantErr: "s3.prefix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var e *errors.Error
			if !errors.As(err, &e) || e.Code != "C003" || !strings.Contains(e.Detail, tt.wantErr) {
				t.Errorf("err = %v, want C003 mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{ConfigFileName, TOMLConfigFileName} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			cfg := New()
			cfg.Site.Title = "Saved"
			cfg.Build.PerPage = 7

			path := filepath.Join(dir, name)
			if err := cfg.SaveTo(path); err != nil {
				t.Fatalf("SaveTo() error = %v", err)
			}
			if cfg.Path() != path {
				t.Errorf("Path() = %q", cfg.Path())
			}

			loaded, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if loaded.Site.Title != "Saved" || loaded.Build.PerPage != 7 {
				t.Errorf("loaded = %+v", loaded)
			}

			loaded.Serve.Port = 1234
			if err := loaded.Save(); err != nil {
				t.Fatalf("Save() error = %v", err)
			}
		})
	}

	if err := New().Save(); err == nil {
		t.Error("Save() without path should fail")
	}
}
