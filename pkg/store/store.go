// Package store persists named orderings.
//
// An ordering is a permutation saved under a name, for example a seating
// plan or a shuffled deck. The store never keeps the permutation itself:
// it records the length and the Lehmer code, which is enough to rebuild the
// permutation and takes a single number regardless of length.
//
// Backends:
//   - [MemoryStore]: process-local, for tests and the server's default
//   - [FileStore]: one JSON file per ordering, for the CLI
//   - [MongoStore]: MongoDB collection, for shared deployments
//
// # Usage
//
//	st, err := store.NewFileStore("")  // ~/.local/share/lehmer/orderings
//	err = st.Put(ctx, &store.Ordering{Name: "deck", Length: 52, Code: code.String()})
//	o, err := st.Get(ctx, "deck")
package store

import (
	"context"
	"time"

	lerrors "github.com/matzehuels/lehmer/pkg/errors"
)

// Ordering is a stored permutation.
type Ordering struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Length    int       `json:"length"`
	Code      string    `json:"code"` // decimal, so lengths beyond int64 fit
	Labels    []string  `json:"labels,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy of o.
func (o *Ordering) Clone() *Ordering {
	if o == nil {
		return nil
	}
	c := *o
	if o.Labels != nil {
		c.Labels = append([]string(nil), o.Labels...)
	}
	return &c
}

// Store is the interface for ordering storage backends.
type Store interface {
	// Get retrieves an ordering by name.
	// Returns an ErrCodeNotFound error if it does not exist.
	Get(ctx context.Context, name string) (*Ordering, error)

	// Put creates or replaces the ordering with o.Name.
	Put(ctx context.Context, o *Ordering) error

	// Delete removes an ordering.
	// Returns an ErrCodeNotFound error if it does not exist.
	Delete(ctx context.Context, name string) error

	// List returns all orderings sorted by name.
	List(ctx context.Context) ([]*Ordering, error)

	// Close releases backend resources.
	Close() error
}

func notFound(name string) error {
	return lerrors.New(lerrors.ErrCodeNotFound, "ordering %q not found", name)
}

func unavailable(err error, format string, args ...any) error {
	return lerrors.Wrap(lerrors.ErrCodeStoreUnavailable, err, format, args...)
}
