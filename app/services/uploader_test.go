package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiskUploaderUploadAndDelete(t *testing.T) {
	root := t.TempDir()
	uploader := NewDiskUploader(root, "/uploads")
	ctx := context.Background()

	url, err := uploader.Upload(ctx, "gallery", "cake.jpg", strings.NewReader("jpeg-bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/gallery/"))
	assert.True(t, strings.HasSuffix(url, "_cake.jpg"))

	relative := strings.TrimPrefix(url, "/uploads/")
	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relative)))
	assert.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(content))

	assert.NoError(t, uploader.Delete(ctx, url))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(relative)))
	assert.True(t, os.IsNotExist(err))
}

func TestDiskUploaderDeleteTolerant(t *testing.T) {
	uploader := NewDiskUploader(t.TempDir(), "/uploads")
	ctx := context.Background()

	// Already gone.
	assert.NoError(t, uploader.Delete(ctx, "/uploads/gallery/never-existed.jpg"))
	// Foreign URLs are left alone.
	assert.NoError(t, uploader.Delete(ctx, "https://cdn.example.com/cake.jpg"))
	assert.NoError(t, uploader.Delete(ctx, ""))
}

func TestDiskUploaderStripsPathFromFilename(t *testing.T) {
	root := t.TempDir()
	uploader := NewDiskUploader(root, "/uploads")

	url, err := uploader.Upload(context.Background(), "gallery", "../../etc/passwd", strings.NewReader("x"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/gallery/"))
	assert.NotContains(t, url, "..")
}
