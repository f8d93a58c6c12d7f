package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ImageStore writes uploaded airplane-type images under a media directory.
// Filenames are "<slug>-<uuid><ext>" so overwrites between same-named types
// cannot happen.
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) *ImageStore {
	return &ImageStore{dir: dir}
}

// Save streams the upload to disk and returns the media-relative path.
func (s *ImageStore) Save(name, originalFilename string, src io.Reader) (string, error) {
	ext := filepath.Ext(originalFilename)
	filename := fmt.Sprintf("%s-%s%s", slugify(name), uuid.NewString(), ext)
	rel := filepath.Join("airplane_types", filename)

	dir := filepath.Join(s.dir, "airplane_types")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	dst, err := os.Create(filepath.Join(s.dir, rel))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return rel, nil
}

func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
