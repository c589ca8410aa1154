package ports

import "context"

// Port: a string-keyed blob store that holds serialized layouts.
// Keys look like "<namespace>-<shipID>".
type LayoutStore interface {
	// Return the stored value. found is false when the key was never set.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Store value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}
