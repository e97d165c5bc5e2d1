package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/extstats/internal/errors"
)

const testData = `[
  {"ext_id": "alpha", "name": "Alpha", "url": "https://store/alpha", "user_count": 1200,
   "full_description": "Does things.\nWell.",
   "files": [{"name": "alpha_1.zip", "storage_url": "https://s/alpha_1.zip", "size": 2048}]},
  {"ext_id": "beta", "name": "Beta", "url": "https://store/beta", "user_count": 7, "files": []}
]`

func TestMain(m *testing.M) {
	errors.DisableColors()
	os.Exit(m.Run())
}

// execute runs the root command with args in an empty config directory.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	data := filepath.Join(dir, "extensions.json")
	if err := os.WriteFile(data, []byte(testData), 0644); err != nil {
		t.Fatal(err)
	}

	for i, arg := range args {
		args[i] = strings.ReplaceAll(arg, "$DIR", dir)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config=" + dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	var e *errors.Error
	if !errors.As(err, &e) {
		t.Fatalf("error %v is not an *errors.Error", err)
	}
	return e.Code
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level   string
		asJSON  bool
		enabled slog.Level
		wantErr bool
	}{
		{"info", false, slog.LevelInfo, false},
		{"debug", true, slog.LevelDebug, false},
		{"WARN", false, slog.LevelWarn, false},
		{"loud", false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := newLogger(&buf, tt.level, tt.asJSON)
			if tt.wantErr {
				if err == nil || errorCode(t, err) != "X003" {
					t.Fatalf("err = %v, want X003", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("newLogger: %v", err)
			}

			logger.Log(context.Background(), tt.enabled, "hello", "k", "v")
			logger.Log(context.Background(), tt.enabled-1, "hidden")
			got := buf.String()
			if !strings.Contains(got, "hello") || strings.Contains(got, "hidden") {
				t.Errorf("log output = %q", got)
			}
			if tt.asJSON && !strings.HasPrefix(got, "{") {
				t.Errorf("not JSON: %q", got)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version = %q, want %q", out, version)
	}
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"list page", []string{"render", "--data", "$DIR/extensions.json"}, `<h2 id="alpha">`},
		{"extension page", []string{"render", "-d", "$DIR/extensions.json", "--ext", "alpha"}, `<p class="description">Does things.<br />Well.<br /></p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if !strings.HasPrefix(out, "<!DOCTYPE html>\n<html>") {
				t.Errorf("output does not start with the doctype: %.40q", out)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestRenderCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code string
	}{
		{"no data", []string{"render"}, "X001"},
		{"missing file", []string{"render", "--data", "$DIR/nope.json"}, "D001"},
		{"unknown extension", []string{"render", "--data", "$DIR/extensions.json", "--ext", "zzz"}, "D003"},
		{"page out of range", []string{"render", "--data", "$DIR/extensions.json", "--page", "9"}, "X003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errorCode(t, err); got != tt.code {
				t.Errorf("code = %s, want %s (%v)", got, tt.code, err)
			}
		})
	}
}

func TestBuildCommand(t *testing.T) {
	out, err := execute(t, "build", "--data", "$DIR/extensions.json", "--out", "$DIR/public", "--per-page", "1")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(out, "Built 4 pages") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "2 extensions, 1 versions, 2.0Ko stored") {
		t.Errorf("output = %q", out)
	}
}

func TestBuildWritesPages(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "extensions.json")
	if err := os.WriteFile(data, []byte(testData), 0644); err != nil {
		t.Fatal(err)
	}
	config := `{"build": {"data": "extensions.json", "output": "public", "perPage": 1}}`
	if err := os.WriteFile(filepath.Join(dir, "extstats.json"), []byte(config), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"build", "--config", dir})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("build: %v", err)
	}

	for _, name := range []string{"index.html", "2.html", "ext/alpha.html", "ext/beta.html"} {
		if _, err := os.Stat(filepath.Join(dir, "public", filepath.FromSlash(name))); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestBuildInvalidConfig(t *testing.T) {
	_, err := execute(t, "build", "--data", "$DIR/extensions.json", "--s3-prefix", "site/")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := errorCode(t, err); got != "C003" {
		t.Errorf("code = %s, want C003", got)
	}
}

func TestInitCommand(t *testing.T) {
	for _, format := range []string{"json", "toml"} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()

			cmd := newRootCmd()
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetArgs([]string{"init", dir, "--format", format})
			if err := cmd.Execute(); err != nil {
				t.Fatalf("init: %v", err)
			}

			cfg, err := loadConfig(dir)
			if err != nil {
				t.Fatalf("loadConfig: %v", err)
			}
			if cfg.Serve.Static != "static" || cfg.Build.Data != "extensions.json" {
				t.Errorf("config = %+v", cfg)
			}
			css, err := os.ReadFile(filepath.Join(dir, "static", "style.css"))
			if err != nil || !bytes.Equal(css, defaultStyleSheet) {
				t.Errorf("style.css = %q, %v", css, err)
			}

			cmd = newRootCmd()
			cmd.SetOut(io.Discard)
			cmd.SetErr(io.Discard)
			cmd.SetArgs([]string{"init", dir})
			err = cmd.Execute()
			if err == nil || errorCode(t, err) != "X004" {
				t.Errorf("second init err = %v, want X004", err)
			}
		})
	}
}

func TestInitUnknownFormat(t *testing.T) {
	_, err := execute(t, "init", "$DIR/new", "--format", "yaml")
	if err == nil || errorCode(t, err) != "X003" {
		t.Errorf("err = %v, want X003", err)
	}
}
