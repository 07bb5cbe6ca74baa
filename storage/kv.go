package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Namespaces mirror the browser keys the storefront has always used.
const (
	CartNamespace     = "soleconnect_cart"
	WishlistNamespace = "soleconnect_wishlist"
)

// SchemaVersion tags every persisted envelope so the stored shape can
// evolve without guessing what wrote it.
const SchemaVersion = 1

// ErrNoSuchEntry is returned when a removal targets an entry that is not
// in the stored list.
var ErrNoSuchEntry = errors.New("no such entry")

// KeyValue is the durable local store behind the cart and wishlist. Writes
// replace the whole value for a namespace. Read-modify-write cycles are
// serialized within this process only; concurrent writers from another
// process can still interleave, the same way two browser tabs could.
type KeyValue interface {
	Get(namespace string) ([]byte, bool, error)
	Put(namespace string, payload []byte) error
}

// envelope wraps a persisted list with its schema version.
type envelope[T any] struct {
	SchemaVersion int `json:"schema_version"`
	Entries       []T `json:"entries"`
}

// readList loads the stored list for a namespace. Missing keys and
// unparseable payloads both come back as an empty list: storage corruption
// is recovered here and never surfaces to a caller.
func readList[T any](kv KeyValue, namespace string) []T {
	data, ok, err := kv.Get(namespace)
	if err != nil || !ok {
		return nil
	}
	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return nil
	}
	return env.Entries
}

func writeList[T any](kv KeyValue, namespace string, entries []T) error {
	data, err := json.Marshal(envelope[T]{SchemaVersion: SchemaVersion, Entries: entries})
	if err != nil {
		return err
	}
	return kv.Put(namespace, data)
}

// FileStore keeps one JSON file per namespace under a data directory.
type FileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// rooted there.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

func (f *FileStore) path(namespace string) string {
	return filepath.Join(f.dir, namespace+".json")
}

func (f *FileStore) Get(namespace string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path(namespace))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (f *FileStore) Put(namespace string, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return os.WriteFile(f.path(namespace), payload, 0o644)
}
