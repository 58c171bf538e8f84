// Package Storage abstracts the cloud drive the app keeps its data in: two
// whole-table CSV blobs plus one photo folder per child. Tables are always
// read and written in full, there is no row-level access.
package Storage

import (
	"context"
	"errors"
)

// ErrStorageUnavailable wraps any drive read/write failure. Operations abort,
// there is no retry or local fallback.
var ErrStorageUnavailable = errors.New("storage unavailable")

// Table is a named-column tabular blob.
type Table struct {
	Header []string
	Rows   [][]string
}

// FileInfo identifies one stored file.
type FileInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Drive is the file-storage collaborator. A missing table reads back empty,
// PutTable overwrites in full, and folders are idempotent lookups keyed by a
// human-readable name.
type Drive interface {
	GetTable(ctx context.Context, name string) (Table, error)
	PutTable(ctx context.Context, name string, t Table) error

	GetOrCreateFolder(ctx context.Context, name string) (string, error)
	ListFiles(ctx context.Context, folder string) ([]FileInfo, error)
	UploadFile(ctx context.Context, folder, name string, data []byte, mimeType string) (string, error)
	DownloadFile(ctx context.Context, id string) ([]byte, error)
}
