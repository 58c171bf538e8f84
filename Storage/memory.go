package Storage

import (
	"context"
	"path"
	"sort"
	"strings"
	"sync"
)

// MemDrive is an in-memory Drive used by tests.
type MemDrive struct {
	mu     sync.Mutex
	tables map[string]Table
	files  map[string][]byte
	mimes  map[string]string
}

func NewMemDrive() *MemDrive {
	return &MemDrive{
		tables: make(map[string]Table),
		files:  make(map[string][]byte),
		mimes:  make(map[string]string),
	}
}

func (d *MemDrive) GetTable(ctx context.Context, name string) (Table, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	t, ok := d.tables[name]
	if !ok {
		return Table{}, nil
	}
	// Round-trip through the codec so tests exercise the same path as S3.
	data, err := EncodeTable(t)
	if err != nil {
		return Table{}, err
	}
	return DecodeTable(data)
}

func (d *MemDrive) PutTable(ctx context.Context, name string, t Table) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tables[name] = t
	return nil
}

func (d *MemDrive) GetOrCreateFolder(ctx context.Context, name string) (string, error) {
	return strings.TrimSuffix(name, "/") + "/", nil
}

func (d *MemDrive) ListFiles(ctx context.Context, folder string) ([]FileInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var files []FileInfo
	for key := range d.files {
		if strings.HasPrefix(key, folder) {
			files = append(files, FileInfo{ID: key, Name: path.Base(key)})
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].ID < files[j].ID })
	return files, nil
}

func (d *MemDrive) UploadFile(ctx context.Context, folder, name string, data []byte, mimeType string) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	key := folder + name
	d.files[key] = append([]byte(nil), data...)
	d.mimes[key] = mimeType
	return key, nil
}

func (d *MemDrive) DownloadFile(ctx context.Context, id string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	data, ok := d.files[id]
	if !ok {
		return nil, ErrStorageUnavailable
	}
	return append([]byte(nil), data...), nil
}
