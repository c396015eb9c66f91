package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Uploader is the blob store collaborator: write-once objects addressed by
// path, each upload returning a stable public URL.
type Uploader interface {
	Upload(ctx context.Context, dir, filename string, content io.Reader) (string, error)
	// Delete is best-effort and tolerates "already gone".
	Delete(ctx context.Context, imageURL string) error
}

// DiskUploader stores blobs under root and serves them from baseURL.
type DiskUploader struct {
	root    string
	baseURL string
}

func NewDiskUploader(root, baseURL string) *DiskUploader {
	return &DiskUploader{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

func (u *DiskUploader) Upload(ctx context.Context, dir, filename string, content io.Reader) (string, error) {
	name := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), filepath.Base(filename))

	if err := os.MkdirAll(filepath.Join(u.root, dir), 0o755); err != nil {
		return "", fmt.Errorf("failed to prepare upload dir %s: %w", dir, err)
	}

	fullPath := filepath.Join(u.root, dir, name)
	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return u.baseURL + "/" + dir + "/" + name, nil
}

func (u *DiskUploader) Delete(ctx context.Context, imageURL string) error {
	// Foreign URLs (seed data, external hosts) are not ours to delete.
	if imageURL == "" || !strings.HasPrefix(imageURL, u.baseURL+"/") {
		return nil
	}

	relative := strings.TrimPrefix(imageURL, u.baseURL+"/")
	err := os.Remove(filepath.Join(u.root, filepath.FromSlash(relative)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete blob %s: %w", relative, err)
	}
	return nil
}
