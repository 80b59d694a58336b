package filestorage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hooplannedthis/api/internal/pkg/apperrors"
)

func newTestStorage(t *testing.T) (*LocalStorage, string) {
	t.Helper()
	dir := t.TempDir()
	ls, err := NewLocalStorage(dir, "http://localhost:8080/uploads/")
	require.NoError(t, err)
	return ls, dir
}

func TestUploadAndPublicURL(t *testing.T) {
	ls, dir := newTestStorage(t)
	ctx := context.Background()

	err := ls.Upload(ctx, "avatars", "advisors/7/1700000000000.jpg", strings.NewReader("jpeg"), UploadOptions{Upsert: true})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "avatars", "advisors", "7", "1700000000000.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))

	assert.Equal(t,
		"http://localhost:8080/uploads/avatars/advisors/7/1700000000000.jpg",
		ls.PublicURL("avatars", "advisors/7/1700000000000.jpg"))
}

func TestUpload_UpsertOverwrites(t *testing.T) {
	ls, dir := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, ls.Upload(ctx, "avatars", "u/1.png", strings.NewReader("old"), UploadOptions{Upsert: true}))
	require.NoError(t, ls.Upload(ctx, "avatars", "u/1.png", strings.NewReader("new"), UploadOptions{Upsert: true}))

	data, err := os.ReadFile(filepath.Join(dir, "avatars", "u", "1.png"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestUpload_WithoutUpsertRejectsExisting(t *testing.T) {
	ls, _ := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, ls.Upload(ctx, "avatars", "u/1.png", strings.NewReader("a"), UploadOptions{}))
	err := ls.Upload(ctx, "avatars", "u/1.png", strings.NewReader("b"), UploadOptions{})
	assert.ErrorIs(t, err, apperrors.ErrObjectExists)
}

func TestUpload_PathCannotEscapeBucket(t *testing.T) {
	ls, dir := newTestStorage(t)

	require.NoError(t, ls.Upload(context.Background(), "avatars", "../../etc/passwd", strings.NewReader("x"), UploadOptions{Upsert: true}))

	_, err := os.Stat(filepath.Join(dir, "avatars", "etc", "passwd"))
	assert.NoError(t, err, "traversal is clamped inside the bucket")
}

func TestUpload_InvalidBucket(t *testing.T) {
	ls, _ := newTestStorage(t)
	err := ls.Upload(context.Background(), "../x", "a.png", strings.NewReader("x"), UploadOptions{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRemove_MissingIsNotAnError(t *testing.T) {
	ls, _ := newTestStorage(t)
	assert.NoError(t, ls.Remove(context.Background(), "avatars", "nothing/here.png"))
}

func TestPublicURL_WithoutBaseURL(t *testing.T) {
	ls, err := NewLocalStorage(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/avatars/abc/1.png", ls.PublicURL("avatars", "abc/1.png"))
}
