package kv

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
)

// File stores each key as a file in a directory, the on-device storage
// analogue for a single-user install.
type File struct {
	dir string
}

func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) string {
	// Keys may contain ':' and '/'; escape them into a safe filename.
	return filepath.Join(f.dir, url.PathEscape(key))
}

func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (f *File) Set(_ context.Context, key string, value []byte) error {
	return os.WriteFile(f.path(key), value, 0o600)
}

func (f *File) Remove(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
