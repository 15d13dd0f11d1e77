package utils

import (
	"fmt"
	"os"
	"strings"
	"unicode"
)

// EnsureDir ensures the provided directory exists.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// SafeWriteFile writes data to a temp file and atomically renames it into place.
func SafeWriteFile(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}

// SafeFileName maps an arbitrary column name to a name usable as a file
// component. Letters and digits of any script are kept, as are '.', '_'
// and '-'; everything else becomes '_'.
func SafeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "_"
	}
	return b.String()
}

// FileNamer hands out sanitized file names within one directory, suffixing
// repeats so two distinct inputs never map to the same name.
type FileNamer struct {
	used map[string]struct{}
}

// Name sanitizes name and reserves it; on a collision with an earlier
// result it appends a numeric suffix.
func (n *FileNamer) Name(name string) string {
	if n.used == nil {
		n.used = make(map[string]struct{})
	}
	base := SafeFileName(name)
	cand := base
	for i := 2; ; i++ {
		if _, taken := n.used[cand]; !taken {
			break
		}
		cand = fmt.Sprintf("%s_%d", base, i)
	}
	n.used[cand] = struct{}{}
	return cand
}
