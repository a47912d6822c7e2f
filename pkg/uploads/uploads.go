// Package uploads stores admin-submitted images on local disk and maps
// them to public URL paths under /uploads/.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is the public path prefix files are served under.
const URLPrefix = "/uploads/"

// Saver writes uploaded files into a single flat directory. Stored names
// are prefixed with a fresh UUID so repeated uploads of the same file
// never collide.
type Saver struct {
	dir string
}

// NewSaver creates the upload directory if needed and returns a Saver
// rooted there.
func NewSaver(dir string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &Saver{dir: dir}, nil
}

// Dir returns the directory files are stored in.
func (s *Saver) Dir() string {
	return s.dir
}

// Save writes the file contents to disk and returns the public URL path.
// Only the base of the client-supplied filename is kept, so path
// separators in it cannot escape the upload directory.
func (s *Saver) Save(filename string, r io.Reader) (string, error) {
	base := filepath.Base(filepath.Clean(strings.ReplaceAll(filename, "\\", "/")))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "", fmt.Errorf("invalid filename %q", filename)
	}

	stored := uuid.NewString() + "_" + base
	f, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("writing upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing upload: %w", err)
	}
	return URLPrefix + stored, nil
}
