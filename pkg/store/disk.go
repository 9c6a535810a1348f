package store

import (
	"fmt"
	"path"
	"strings"

	"github.com/shashiranjanraj/bizdesk/pkg/storage"
)

// DiskBackend persists each collection as <root>/<key>.json on a storage
// Disk. With the "local" disk this mirrors what the browser app kept in
// localStorage, one file per key; with the "s3" disk the same layout lands
// in object storage.
type DiskBackend struct {
	disk storage.Disk
	root string
}

// NewDiskBackend creates a backend writing under root on the given disk.
func NewDiskBackend(disk storage.Disk, root string) *DiskBackend {
	return &DiskBackend{disk: disk, root: strings.Trim(root, "/")}
}

func (b *DiskBackend) path(key string) string {
	return path.Join(b.root, key+".json")
}

func (b *DiskBackend) Read(key string) ([]byte, bool, error) {
	p := b.path(key)
	if b.disk.Missing(p) {
		return nil, false, nil
	}
	raw, err := b.disk.Get(p)
	if err != nil {
		return nil, false, fmt.Errorf("disk backend: get %q: %w", p, err)
	}
	return raw, true, nil
}

func (b *DiskBackend) Write(key string, data []byte) error {
	return b.disk.Put(b.path(key), data)
}

func (b *DiskBackend) Remove(key string) error {
	return b.disk.Delete(b.path(key))
}

func (b *DiskBackend) Keys() ([]string, error) {
	files, err := b.disk.Files(b.root)
	if err != nil {
		return nil, fmt.Errorf("disk backend: list %q: %w", b.root, err)
	}
	keys := make([]string, 0, len(files))
	for _, f := range files {
		name := path.Base(f)
		if strings.HasSuffix(name, ".json") {
			keys = append(keys, strings.TrimSuffix(name, ".json"))
		}
	}
	return keys, nil
}
