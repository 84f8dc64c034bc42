package service

import (
	"context"

	"github.com/google/uuid"

	lerrors "github.com/matzehuels/lehmer/pkg/errors"
	"github.com/matzehuels/lehmer/pkg/perm"
	"github.com/matzehuels/lehmer/pkg/store"
)

// Entry is a stored ordering together with its decoded permutation.
type Entry struct {
	*store.Ordering
	Permutation []int `json:"permutation"`
	// Arranged holds the labels in permutation order, when labels were saved.
	Arranged []string `json:"arranged,omitempty"`
}

// Save encodes p and stores it under name, replacing any previous ordering
// with that name. The ID and creation time of a replaced ordering are kept.
func (r *Runner) Save(ctx context.Context, name string, p []int, labels []string) (*store.Ordering, error) {
	if err := lerrors.ValidateName(name); err != nil {
		return nil, err
	}
	if err := lerrors.ValidateLabels(labels, len(p)); err != nil {
		return nil, err
	}

	res, err := r.Encode(ctx, p)
	if err != nil {
		return nil, err
	}

	now := r.now().UTC()
	o := &store.Ordering{
		ID:        uuid.NewString(),
		Name:      name,
		Length:    res.Length,
		Code:      res.Code,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if len(labels) > 0 {
		o.Labels = append([]string(nil), labels...)
	}

	existing, err := r.Store.Get(ctx, name)
	switch {
	case err == nil:
		o.ID = existing.ID
		o.CreatedAt = existing.CreatedAt
	case !lerrors.Is(err, lerrors.ErrCodeNotFound):
		return nil, err
	}

	if err := r.Store.Put(ctx, o); err != nil {
		return nil, err
	}
	r.Logger.Info("saved ordering", "name", name, "length", o.Length, "id", o.ID)
	return o, nil
}

// Load returns the ordering stored under name with its permutation decoded.
func (r *Runner) Load(ctx context.Context, name string) (*Entry, error) {
	if err := lerrors.ValidateName(name); err != nil {
		return nil, err
	}
	o, err := r.Store.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	res, err := r.Decode(ctx, o.Length, o.Code)
	if err != nil {
		return nil, lerrors.Wrap(lerrors.ErrCodeInternal, err, "stored ordering %q is corrupt", name)
	}

	e := &Entry{Ordering: o, Permutation: res.Permutation}
	if len(o.Labels) == o.Length && o.Length > 0 {
		e.Arranged = perm.Apply(res.Permutation, o.Labels)
	}
	return e, nil
}

// List returns all stored orderings sorted by name.
func (r *Runner) List(ctx context.Context) ([]*store.Ordering, error) {
	return r.Store.List(ctx)
}

// Delete removes the ordering stored under name.
func (r *Runner) Delete(ctx context.Context, name string) error {
	if err := lerrors.ValidateName(name); err != nil {
		return err
	}
	if err := r.Store.Delete(ctx, name); err != nil {
		return err
	}
	r.Logger.Info("deleted ordering", "name", name)
	return nil
}
