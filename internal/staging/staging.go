// Package staging holds files the admin has picked in the wizard but
// that have not been submitted upstream yet. Every staged file gets a
// preview URL for immediate display; the preview is released when the
// file is replaced, cleared or reset away, so previews never outlive
// their slot.
package staging

import (
	"io"
	"os"
	"path/filepath"

	"shilpgroup-io/backoffice/models"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// PreviewProvider turns a staged file into a displayable URL and tears
// it down again.
type PreviewProvider interface {
	Publish(f *models.StagedFile) (url, id string, err error)
	Release(id string) error
}

// Store keeps staged file bytes in a directory on disk, one subdirectory
// per draft.
type Store struct {
	dir     string
	preview PreviewProvider
}

func NewStore(dir string, preview PreviewProvider) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating staging directory")
	}
	return &Store{dir: dir, preview: preview}, nil
}

// Stage writes the picked file to the staging area and publishes its
// preview URL.
func (s *Store) Stage(draftID, name, contentType string, size int64, r io.Reader) (*models.StagedFile, error) {
	id := uuid.NewString()
	dir := filepath.Join(s.dir, draftID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating draft staging directory")
	}

	path := filepath.Join(dir, id+filepath.Ext(name))
	dst, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "creating staged file")
	}
	written, err := io.Copy(dst, r)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, errors.Wrap(err, "writing staged file")
	}
	if size <= 0 {
		size = written
	}

	f := &models.StagedFile{
		ID:          id,
		Path:        path,
		Name:        name,
		Size:        size,
		ContentType: contentType,
	}

	if s.preview != nil {
		url, previewID, err := s.preview.Publish(f)
		if err != nil {
			_ = os.Remove(path)
			return nil, errors.Wrap(err, "publishing preview")
		}
		f.PreviewURL = url
		f.PreviewID = previewID
	}
	return f, nil
}

// Open returns the staged bytes for submission assembly.
func (s *Store) Open(f *models.StagedFile) (io.ReadCloser, error) {
	return os.Open(f.Path)
}

// Release deletes the staged bytes and retires the preview URL.
func (s *Store) Release(f *models.StagedFile) error {
	if f == nil {
		return nil
	}
	var firstErr error
	if s.preview != nil && f.PreviewID != "" {
		if err := s.preview.Release(f.PreviewID); err != nil {
			firstErr = err
		}
	}
	if err := os.Remove(f.Path); err != nil && !os.IsNotExist(err) && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
