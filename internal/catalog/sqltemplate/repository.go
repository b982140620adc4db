// Package sqltemplate resolves legacy SQL query text from template files laid
// out on disk as <base>/<domain>/<locale>/<file>.
package sqltemplate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sciport/pkg/platform/sentinel"
)

// Location identifies one SQL template.
type Location struct {
	Domain   string
	Locale   string
	FileName string
}

// Repository reads SQL templates from a base directory. Lookups are confined
// to that directory; segments that could traverse out are rejected before any
// filesystem access.
type Repository struct {
	baseDir string
}

// New builds a Repository rooted at baseDir. The directory does not have to
// exist yet; missing templates surface as sentinel.ErrNotFound on read.
func New(baseDir string) (*Repository, error) {
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolve template base %q: %w", baseDir, err)
	}
	return &Repository{baseDir: abs}, nil
}

// ReadTemplate returns the query text for the location.
// Returns sentinel.ErrInvalidPath when any segment would escape the base
// directory and sentinel.ErrNotFound when the file is absent.
func (r *Repository) ReadTemplate(loc Location) (string, error) {
	for _, segment := range []string{loc.Domain, loc.Locale, loc.FileName} {
		if err := checkSegment(segment); err != nil {
			return "", err
		}
	}

	path := filepath.Join(r.baseDir, loc.Domain, loc.Locale, loc.FileName)
	if !strings.HasPrefix(path, r.baseDir+string(filepath.Separator)) {
		return "", fmt.Errorf("template path %q: %w", path, sentinel.ErrInvalidPath)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("template %s/%s/%s: %w", loc.Domain, loc.Locale, loc.FileName, sentinel.ErrNotFound)
	}
	return string(content), nil
}

func checkSegment(segment string) error {
	if segment == "" ||
		strings.Contains(segment, "..") ||
		strings.ContainsAny(segment, `/\`) {
		return fmt.Errorf("template path segment %q: %w", segment, sentinel.ErrInvalidPath)
	}
	return nil
}
