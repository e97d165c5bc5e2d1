package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-dev/extstats/pkg/markup"
)

func TestMain(m *testing.M) {
	DisableColors()
	os.Exit(m.Run())
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "markup error",
			code:    "M003",
			wantMsg: "Void element has children",
			wantCat: CategoryMarkup,
		},
		{
			name:    "config error",
			code:    "C002",
			wantMsg: "Configuration file is malformed",
			wantCat: CategoryConfig,
		},
		{
			name:    "store error",
			code:    "S002",
			wantMsg: "S3 upload failed",
			wantCat: CategoryStore,
		},
		{
			name:    "unknown error code",
			code:    "Z999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestMarkupCodesRegistered(t *testing.T) {
	codes := []markup.FaultCode{
		markup.CodeEmptyTag,
		markup.CodeEmptyAttrKey,
		markup.CodeVoidChildren,
		markup.CodeUnsupportedValue,
	}
	for _, code := range codes {
		tmpl, ok := Lookup(string(code))
		if !ok {
			t.Errorf("fault code %s is not registered", code)
			continue
		}
		if tmpl.Category != CategoryMarkup {
			t.Errorf("%s category = %q, want markup", code, tmpl.Category)
		}
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryCLI, "flag %q is required", "--data")
	if err.Message != `flag "--data" is required` {
		t.Errorf("Message = %q", err.Message)
	}
	if err.Category != CategoryCLI {
		t.Errorf("Category = %q, want %q", err.Category, CategoryCLI)
	}
}

func TestError_Error(t *testing.T) {
	err := New("D003")
	if got, want := err.Error(), "D003: Extension not found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err2 := &Error{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}

	err3 := New("D001").Wrap(os.ErrNotExist)
	if !strings.HasSuffix(err3.Error(), ": file does not exist") {
		t.Errorf("Error() = %q should include cause", err3.Error())
	}
}

func TestWrapAndUnwrap(t *testing.T) {
	err := New("S001").Wrap(os.ErrPermission)
	if !Is(err, os.ErrPermission) {
		t.Error("Is should find wrapped error")
	}

	outer := fmt.Errorf("build: %w", err)
	var e *Error
	if !As(outer, &e) || e.Code != "S001" {
		t.Errorf("As = %v, %v", e, outer)
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "D001") != nil {
		t.Error("FromError(nil) should be nil")
	}

	existing := New("C003")
	if got := FromError(fmt.Errorf("wrap: %w", existing), "D001"); got != existing {
		t.Errorf("FromError should return the existing *Error, got %v", got)
	}

	_, renderErr := markup.TryRender(&markup.Node{Tag: "hr", Children: []any{"x"}})
	got := FromError(fmt.Errorf("render ext: %w", renderErr), "X002")
	if got.Code != "M003" {
		t.Errorf("fault code = %q, want M003", got.Code)
	}

	plain := FromError(os.ErrClosed, "X002")
	if plain.Code != "X002" || !Is(plain, os.ErrClosed) {
		t.Errorf("plain = %v", plain)
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exts.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWithLocation(t *testing.T) {
	path := writeTempFile(t, "line1\nline2\nline3\nline4\nline5\nline6\n")

	err := New("D002").WithLocation(path, 3, 2)
	if err.Location.String() != path+":3:2" {
		t.Errorf("Location = %q", err.Location.String())
	}
	want := []string{"line1", "line2", "line3", "line4", "line5"}
	if strings.Join(err.Context, ",") != strings.Join(want, ",") {
		t.Errorf("Context = %v, want %v", err.Context, want)
	}

	noCol := &Location{File: "a.json", Line: 4}
	if noCol.String() != "a.json:4" {
		t.Errorf("String() = %q", noCol.String())
	}
	var nilLoc *Location
	if nilLoc.String() != "" {
		t.Error("nil location should be empty")
	}
}

func TestWithOffset(t *testing.T) {
	content := "[\n  {\"id\": 1,,}\n]\n"
	path := writeTempFile(t, content)

	var target any
	jsonErr := json.Unmarshal([]byte(content), &target)
	var syntaxErr *json.SyntaxError
	if !As(jsonErr, &syntaxErr) {
		t.Fatalf("expected syntax error, got %v", jsonErr)
	}

	err := New("D002").WithOffset(path, syntaxErr.Offset)
	if err.Location == nil || err.Location.Line != 2 {
		t.Fatalf("Location = %v, want line 2", err.Location)
	}

	missing := New("D002").WithOffset(filepath.Join(t.TempDir(), "missing.json"), 3)
	if missing.Location != nil {
		t.Error("missing file should leave location unset")
	}
}

func TestFormat(t *testing.T) {
	path := writeTempFile(t, "a\nb\nc\n")
	err := New("D002").
		WithLocation(path, 2, 1).
		WithSuggestion("Check for a trailing comma").
		Wrap(fmt.Errorf("invalid character ','"))

	out := err.Format()
	for _, want := range []string{
		"ERROR D002: Extension data is not valid JSON",
		path + ":2:1",
		"→    2 │ b",
		"Hint: Check for a trailing comma",
		"Cause: invalid character ','",
		"Learn more: " + docBase + "d002",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("C003")
	err.Location = &Location{File: "extstats.json", Line: 3}
	if got, want := err.FormatCompact(), "extstats.json:3: C003: Invalid configuration value"; got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestFormatJSON(t *testing.T) {
	err := New("X001").WithSuggestion("pass --data")
	var decoded map[string]any
	if jerr := json.Unmarshal([]byte(err.FormatJSON()), &decoded); jerr != nil {
		t.Fatalf("invalid JSON: %v", jerr)
	}
	if decoded["code"] != "X001" || decoded["category"] != "cli" || decoded["suggestion"] != "pass --data" {
		t.Errorf("decoded = %v", decoded)
	}
	if _, ok := decoded["location"]; ok {
		t.Error("location should be omitted")
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  int
	}{
		{text: "", width: 10, want: 0},
		{text: "short", width: 10, want: 1},
		{text: "one two three four", width: 9, want: 3},
	}
	for _, tt := range tests {
		if got := wrapText(tt.text, tt.width); len(got) != tt.want {
			t.Errorf("wrapText(%q, %d) = %v, want %d lines", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	Print(&buf, New("D004"))
	if !strings.Contains(buf.String(), "ERROR D004") {
		t.Errorf("got %q", buf.String())
	}

	buf.Reset()
	Print(&buf, os.ErrNotExist)
	if !strings.Contains(buf.String(), "ERROR: file does not exist") {
		t.Errorf("got %q", buf.String())
	}
}
