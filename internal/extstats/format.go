package extstats

import (
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/vango-dev/extstats/pkg/markup"
)

// sizeUnits are the binary size suffixes, French style (octets).
var sizeUnits = []string{"", "Ko", "Mo", "Go", "To"}

// AddCommas formats n with comma thousands separators: 1234567 -> "1,234,567".
func AddCommas(n int64) string {
	return humanize.Comma(n)
}

// SizeOf formats a byte count with one decimal and a binary unit suffix:
// 1536 -> "1.5Ko". Sizes of 1024 To and more use "Yi".
func SizeOf(num float64) string {
	for _, unit := range sizeUnits {
		if math.Abs(num) < 1024 {
			return fmt.Sprintf("%3.1f%s", num, unit)
		}
		num /= 1024
	}
	return fmt.Sprintf("%.1f%s", num, "Yi")
}

// NL2BR yields each non-empty line of text followed by a line break.
func NL2BR(text string) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, line := range strings.Split(text, "\n") {
			if line == "" {
				continue
			}
			if !yield([]any{line, markup.Br(nil)}) {
				return
			}
		}
	}
}

// PageName returns the file name of list page p. The first page is the
// site index.
func PageName(p int) string {
	if p <= 1 {
		return "index.html"
	}
	return strconv.Itoa(p) + ".html"
}

// PageNumber parses a list page name without its ".html" suffix. "index"
// and "" are page 1.
func PageNumber(name string) (int, bool) {
	if name == "" || name == "index" {
		return 1, true
	}
	p, err := strconv.Atoi(name)
	if err != nil || p < 1 {
		return 0, false
	}
	return p, true
}

// ExtPath returns the site path of an extension's detail page.
func ExtPath(id string) string {
	return "ext/" + id + ".html"
}

// versionName strips archive suffixes from a stored file name.
func versionName(name string) string {
	return strings.ReplaceAll(name, ".zip", "")
}
