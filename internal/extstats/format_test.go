package extstats

import (
	"testing"

	"github.com/vango-dev/extstats/pkg/markup"
)

func TestAddCommas(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}

	for _, tt := range tests {
		if got := AddCommas(tt.in); got != tt.want {
			t.Errorf("AddCommas(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSizeOf(t *testing.T) {
	const k = 1024.0
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{512, "512.0"},
		{1023, "1023.0"},
		{k, "1.0Ko"},
		{1536, "1.5Ko"},
		{-2048, "-2.0Ko"},
		{k * k, "1.0Mo"},
		{3.5 * k * k * k, "3.5Go"},
		{k * k * k * k, "1.0To"},
		{k * k * k * k * k, "1.0Yi"},
	}

	for _, tt := range tests {
		if got := SizeOf(tt.in); got != tt.want {
			t.Errorf("SizeOf(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNL2BR(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"single line", "hello", "hello<br />"},
		{"skips blank lines", "a\n\nb\n", "a<br />b<br />"},
		{"escapes", "x < y", "x &lt; y<br />"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := markup.Render(NL2BR(tt.in)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNL2BRStopsEarly(t *testing.T) {
	n := 0
	for range NL2BR("a\nb\nc") {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("iterated %d lines, want 2", n)
	}
}

func TestPageName(t *testing.T) {
	tests := []struct {
		page int
		want string
	}{
		{0, "index.html"},
		{1, "index.html"},
		{2, "2.html"},
		{17, "17.html"},
	}

	for _, tt := range tests {
		if got := PageName(tt.page); got != tt.want {
			t.Errorf("PageName(%d) = %q, want %q", tt.page, got, tt.want)
		}
	}
}

func TestPageNumber(t *testing.T) {
	tests := []struct {
		name   string
		want   int
		wantOK bool
	}{
		{"", 1, true},
		{"index", 1, true},
		{"2", 2, true},
		{"0", 0, false},
		{"-1", 0, false},
		{"about", 0, false},
	}

	for _, tt := range tests {
		got, ok := PageNumber(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("PageNumber(%q) = %d, %v, want %d, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestVersionName(t *testing.T) {
	if got := versionName("abc_1.2.zip"); got != "abc_1.2" {
		t.Errorf("versionName = %q", got)
	}
	if got := versionName("notes.txt"); got != "notes.txt" {
		t.Errorf("versionName = %q", got)
	}
}
