package staging

import (
	"io"
	"os"
	"strings"
	"testing"

	"shilpgroup-io/backoffice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(dir, &LocalPreview{BaseURL: "http://localhost:8080", Dir: dir})
	require.NoError(t, err)
	return store, dir
}

func TestStageWritesFileAndPublishesPreview(t *testing.T) {
	store, _ := newTestStore(t)

	f, err := store.Stage("admin-1", "brochure.pdf", "application/pdf", 0, strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)

	assert.NotEmpty(t, f.ID)
	assert.Equal(t, "brochure.pdf", f.Name)
	assert.Equal(t, int64(8), f.Size)
	assert.True(t, strings.HasSuffix(f.Path, ".pdf"))
	assert.True(t, strings.HasPrefix(f.PreviewURL, "http://localhost:8080/staging/admin-1/"))

	src, err := store.Open(f)
	require.NoError(t, err)
	defer src.Close()
	content, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(content))
}

func TestStagedFilesAreIsolatedPerDraft(t *testing.T) {
	store, _ := newTestStore(t)

	a, err := store.Stage("admin-1", "a.jpg", "image/jpeg", 0, strings.NewReader("aa"))
	require.NoError(t, err)
	b, err := store.Stage("admin-2", "b.jpg", "image/jpeg", 0, strings.NewReader("bb"))
	require.NoError(t, err)

	assert.Contains(t, a.Path, "admin-1")
	assert.Contains(t, b.Path, "admin-2")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestReleaseRemovesStagedBytes(t *testing.T) {
	store, _ := newTestStore(t)

	f, err := store.Stage("admin-1", "a.jpg", "image/jpeg", 0, strings.NewReader("aa"))
	require.NoError(t, err)
	require.FileExists(t, f.Path)

	require.NoError(t, store.Release(f))
	_, err = os.Stat(f.Path)
	assert.True(t, os.IsNotExist(err))

	// Releasing twice is harmless.
	assert.NoError(t, store.Release(f))
	assert.NoError(t, store.Release(nil))
}

func TestLocalPreviewURLIsRelativeToStagingRoute(t *testing.T) {
	dir := t.TempDir()
	preview := &LocalPreview{BaseURL: "http://localhost:8080/", Dir: dir}

	f := &models.StagedFile{Path: dir + "/admin-1/file.jpg"}
	url, id, err := preview.Publish(f)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/staging/admin-1/file.jpg", url)
	assert.Equal(t, "admin-1/file.jpg", id)
	assert.NoError(t, preview.Release(id))
}
