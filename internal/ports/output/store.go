package output

import "context"

// Entry is one named value of the persistent store.
type Entry struct {
	Key   string
	Value string
}

// KV is the persistent store: a durable key-value area holding the serialized
// registry between sessions. Entries are read once at startup and overwritten
// wholesale after every mutation.
type KV interface {
	// Get returns the value stored under key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// PutAll overwrites the given entries atomically : soit toutes les
	// entrées sont écrites, soit aucune.
	PutAll(ctx context.Context, entries ...Entry) error
}
