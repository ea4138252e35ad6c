package archive

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrMissing    = errors.New("archive: no blob under key")
	ErrEmptyStack = errors.New("archive: no saved states")
)

// BlobStore is a key-value service holding serialized states and the stack of save tokens
type BlobStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// Push appends value to the list under key
	Push(ctx context.Context, key, value string) error
	// Peek returns the last value pushed under key without removing it, ErrEmptyStack if there is none
	Peek(ctx context.Context, key string) (string, error)
	// Pop removes and returns the last value pushed under key, ErrEmptyStack if there is none
	Pop(ctx context.Context, key string) (string, error)
	Close() error
}

// MemoryStore keeps blobs in process memory
type MemoryStore struct {
	mutex sync.Mutex
	blobs map[string]string
	lists map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs: make(map[string]string),
		lists: make(map[string][]string),
	}
}

func (store *MemoryStore) Get(_ context.Context, key string) (string, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	value, ok := store.blobs[key]
	if !ok {
		return "", ErrMissing
	}
	return value, nil
}

func (store *MemoryStore) Set(_ context.Context, key, value string) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.blobs[key] = value
	return nil
}

func (store *MemoryStore) Push(_ context.Context, key, value string) error {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	store.lists[key] = append(store.lists[key], value)
	return nil
}

func (store *MemoryStore) Peek(_ context.Context, key string) (string, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	list := store.lists[key]
	if len(list) == 0 {
		return "", ErrEmptyStack
	}
	return list[len(list)-1], nil
}

func (store *MemoryStore) Pop(_ context.Context, key string) (string, error) {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	list := store.lists[key]
	if len(list) == 0 {
		return "", ErrEmptyStack
	}
	value := list[len(list)-1]
	store.lists[key] = list[:len(list)-1]
	return value, nil
}

func (store *MemoryStore) Close() error {
	return nil
}
