package extstats

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// ErrNoExtensions is returned when the data contains no extension.
var ErrNoExtensions = errors.New("no extensions")

// Extension is one archived extension.
type Extension struct {
	ID              string `json:"ext_id"`
	Name            string `json:"name"`
	URL             string `json:"url"`
	UserCount       Count  `json:"user_count"`
	FullDescription string `json:"full_description"`
	Files           []File `json:"files"`

	// raw keeps the full record, unknown fields included, for the detail
	// page dump.
	raw json.RawMessage
}

// File is one archived version of an extension.
type File struct {
	Name       string `json:"name"`
	StorageURL string `json:"storage_url"`
	Size       int64  `json:"size"`
}

// Count is a user count. The data feed writes it either as a number or as
// a numeric string.
type Count int64

// UnmarshalJSON implements json.Unmarshaler.
func (c *Count) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*c = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("user_count %s: %w", data, err)
	}
	*c = Count(f)
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Extension) UnmarshalJSON(data []byte) error {
	type plain Extension
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*e = Extension(p)
	e.raw = append(json.RawMessage(nil), data...)
	return nil
}

// Record returns the extension record as indented JSON with sorted keys.
func (e *Extension) Record() (string, error) {
	var v any
	if len(e.raw) > 0 {
		if err := json.Unmarshal(e.raw, &v); err != nil {
			return "", err
		}
	} else {
		// Built in code rather than decoded; round-trip the typed fields.
		data, err := json.Marshal((*plainExtension)(e))
		if err != nil {
			return "", err
		}
		if err := json.Unmarshal(data, &v); err != nil {
			return "", err
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

type plainExtension Extension

// LoadExtensions decodes a JSON array of extensions.
func LoadExtensions(r io.Reader) ([]Extension, error) {
	var exts []Extension
	if err := json.NewDecoder(r).Decode(&exts); err != nil {
		return nil, err
	}
	if len(exts) == 0 {
		return nil, ErrNoExtensions
	}
	return exts, nil
}

// SortByUsers orders extensions by user count, most used first. Ties keep
// their input order.
func SortByUsers(exts []Extension) {
	sort.SliceStable(exts, func(i, j int) bool {
		return exts[i].UserCount > exts[j].UserCount
	})
}

// Find returns the extension with the given ID.
func Find(exts []Extension, id string) (*Extension, bool) {
	for i := range exts {
		if exts[i].ID == id {
			return &exts[i], true
		}
	}
	return nil, false
}

// Stats are the archive totals shown on list pages.
type Stats struct {
	Extensions int
	Files      int
	TotalSize  int64
}

// ComputeStats sums files and sizes over all extensions.
func ComputeStats(exts []Extension) Stats {
	stats := Stats{Extensions: len(exts)}
	for _, ext := range exts {
		stats.Files += len(ext.Files)
		for _, f := range ext.Files {
			stats.TotalSize += f.Size
		}
	}
	return stats
}

// Paginate splits exts into pages of at most perPage extensions. It always
// returns at least one page.
func Paginate(exts []Extension, perPage int) [][]Extension {
	if perPage < 1 {
		perPage = 1
	}
	var pages [][]Extension
	for start := 0; start < len(exts); start += perPage {
		end := min(start+perPage, len(exts))
		pages = append(pages, exts[start:end])
	}
	if len(pages) == 0 {
		pages = append(pages, nil)
	}
	return pages
}
