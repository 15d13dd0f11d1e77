package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// LoadError reports a CSV file that could not be read or parsed. It aborts
// the run; loading is never retried.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string { return fmt.Sprintf("load %s: %v", e.Path, e.Err) }
func (e *LoadError) Unwrap() error { return e.Err }

// naTokens are cell values treated as missing observations, matching the
// usual CSV conventions.
var naTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"NaN":  {},
	"nan":  {},
	"null": {},
	"NULL": {},
	"None": {},
}

// IsMissing reports whether a raw cell value counts as missing.
func IsMissing(v string) bool {
	_, ok := naTokens[strings.TrimSpace(v)]
	return ok
}

// Load reads a delimited text file into a Table using the given separator and
// encoding name (IANA charset name; empty or "utf-8" means no transcoding).
// All rows must have the header's field count; column names are deduplicated
// by failing, not renaming.
func Load(path string, sep rune, encodingName string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	var src io.Reader = f
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if enc != nil {
		src = transform.NewReader(f, enc.NewDecoder())
	}

	r := csv.NewReader(src)
	if sep != 0 {
		r.Comma = sep
	}
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &LoadError{Path: path, Err: errors.New("empty file")}
	}

	header := records[0]
	seen := make(map[string]struct{}, len(header))
	cols := make([]Column, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if _, dup := seen[name]; dup {
			return nil, &LoadError{Path: path, Err: fmt.Errorf("duplicate column name %q", name)}
		}
		seen[name] = struct{}{}
		cols[i] = Column{Name: name}
	}

	rows := records[1:]
	for i := range cols {
		cols[i].Cells = make([]string, len(rows))
		cols[i].Missing = make([]bool, len(rows))
	}
	for ri, rec := range rows {
		for ci, v := range rec {
			cols[ci].Cells[ri] = v
			cols[ci].Missing[ri] = IsMissing(v)
		}
	}

	return &Table{Source: filepath.Base(path), Columns: cols, Rows: len(rows)}, nil
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown encoding %q", name)
	}
	return enc, nil
}
