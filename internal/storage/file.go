package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const qrDirectory = "qrs"

// FileStore writes images under <root>/qrs, replacing older copies.
type FileStore struct {
	root string
}

func NewFileStore(root string) (*FileStore, error) {
	root = strings.TrimSpace(root)
	if root == "" {
		return nil, errors.New("media root is required for the file store")
	}
	if err := os.MkdirAll(filepath.Join(root, qrDirectory), 0o755); err != nil {
		return nil, fmt.Errorf("create qr directory: %w", err)
	}
	return &FileStore{root: root}, nil
}

func (store *FileStore) SaveQRCode(_ context.Context, _ uint, filename string, png []byte) (string, error) {
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", fmt.Errorf("invalid qr filename %q", filename)
	}

	relative := filepath.Join(qrDirectory, name)
	target := filepath.Join(store.root, relative)
	temporary, err := os.CreateTemp(filepath.Dir(target), ".qr-*")
	if err != nil {
		return "", fmt.Errorf("create temp qr file: %w", err)
	}
	if _, err := temporary.Write(png); err != nil {
		_ = temporary.Close()
		_ = os.Remove(temporary.Name())
		return "", fmt.Errorf("write qr file: %w", err)
	}
	if err := temporary.Close(); err != nil {
		_ = os.Remove(temporary.Name())
		return "", fmt.Errorf("close qr file: %w", err)
	}
	if err := os.Rename(temporary.Name(), target); err != nil {
		_ = os.Remove(temporary.Name())
		return "", fmt.Errorf("move qr file: %w", err)
	}
	return filepath.ToSlash(relative), nil
}
