package service

import (
	"context"
	"slices"
	"testing"
	"time"

	lerrors "github.com/matzehuels/lehmer/pkg/errors"
	"github.com/matzehuels/lehmer/pkg/store"
)

func TestSaveAndLoad(t *testing.T) {
	r := newTestRunner(nil)
	ctx := context.Background()

	o, err := r.Save(ctx, "seating", []int{2, 0, 1}, []string{"ann", "bob", "cy"})
	if err != nil {
		t.Fatal(err)
	}
	if o.ID == "" || o.Code != "4" || o.Length != 3 {
		t.Errorf("Save() = %+v", o)
	}

	e, err := r.Load(ctx, "seating")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(e.Permutation, []int{2, 0, 1}) {
		t.Errorf("Permutation = %v", e.Permutation)
	}
	if !slices.Equal(e.Arranged, []string{"cy", "ann", "bob"}) {
		t.Errorf("Arranged = %v", e.Arranged)
	}
}

func TestSaveLong(t *testing.T) {
	r := newTestRunner(nil)
	ctx := context.Background()

	p := reversed(52)
	if _, err := r.Save(ctx, "deck", p, nil); err != nil {
		t.Fatal(err)
	}
	e, err := r.Load(ctx, "deck")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(e.Permutation, p) {
		t.Errorf("Permutation = %v", e.Permutation)
	}
	if e.Arranged != nil {
		t.Errorf("Arranged = %v, want nil without labels", e.Arranged)
	}
}

func TestSaveReplaceKeepsIdentity(t *testing.T) {
	r := newTestRunner(nil)
	ctx := context.Background()

	t0 := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.now = func() time.Time { return t0 }
	first, err := r.Save(ctx, "x", []int{0, 1}, nil)
	if err != nil {
		t.Fatal(err)
	}

	r.now = func() time.Time { return t0.Add(time.Hour) }
	second, err := r.Save(ctx, "x", []int{1, 0}, nil)
	if err != nil {
		t.Fatal(err)
	}

	if second.ID != first.ID {
		t.Errorf("ID changed on replace: %s -> %s", first.ID, second.ID)
	}
	if !second.CreatedAt.Equal(t0) {
		t.Errorf("CreatedAt = %v, want %v", second.CreatedAt, t0)
	}
	if !second.UpdatedAt.Equal(t0.Add(time.Hour)) {
		t.Errorf("UpdatedAt = %v", second.UpdatedAt)
	}
	if second.Code != "1" {
		t.Errorf("Code = %s, want 1", second.Code)
	}
}

func TestSaveErrors(t *testing.T) {
	r := newTestRunner(nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		oname  string
		p      []int
		labels []string
		want   lerrors.Code
	}{
		{"bad name", "../etc", []int{0}, nil, lerrors.ErrCodeInvalidName},
		{"empty name", "", []int{0}, nil, lerrors.ErrCodeInvalidName},
		{"label count", "a", []int{0, 1}, []string{"x"}, lerrors.ErrCodeInvalidInput},
		{"duplicate labels", "a", []int{0, 1}, []string{"x", "x"}, lerrors.ErrCodeInvalidInput},
		{"invalid permutation", "a", []int{0, 0}, nil, lerrors.ErrCodeInvalidPermutation},
		{"empty permutation", "a", []int{}, nil, lerrors.ErrCodeInvalidPermutation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Save(ctx, tt.oname, tt.p, tt.labels)
			if !lerrors.Is(err, tt.want) {
				t.Errorf("Save() error = %v, want %s", err, tt.want)
			}
		})
	}

	list, _ := r.List(ctx)
	if len(list) != 0 {
		t.Errorf("failed saves stored %d orderings", len(list))
	}
}

func TestLoadMissing(t *testing.T) {
	r := newTestRunner(nil)
	if _, err := r.Load(context.Background(), "nope"); !lerrors.Is(err, lerrors.ErrCodeNotFound) {
		t.Errorf("Load() error = %v, want NOT_FOUND", err)
	}
}

func TestLoadCorrupt(t *testing.T) {
	st := store.NewMemoryStore()
	r := NewRunner(nil, nil, st, quietLogger())
	ctx := context.Background()

	if err := st.Put(ctx, &store.Ordering{Name: "bad", Length: 3, Code: "99"}); err != nil {
		t.Fatal(err)
	}
	if _, err := r.Load(ctx, "bad"); !lerrors.Is(err, lerrors.ErrCodeInternal) {
		t.Errorf("Load() error = %v, want INTERNAL_ERROR", err)
	}
}

func TestListAndDelete(t *testing.T) {
	r := newTestRunner(nil)
	ctx := context.Background()

	for _, name := range []string{"b", "a", "c"} {
		if _, err := r.Save(ctx, name, []int{1, 0}, nil); err != nil {
			t.Fatal(err)
		}
	}

	list, err := r.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, o := range list {
		names = append(names, o.Name)
	}
	if !slices.Equal(names, []string{"a", "b", "c"}) {
		t.Errorf("List() names = %v", names)
	}

	if err := r.Delete(ctx, "b"); err != nil {
		t.Fatal(err)
	}
	if err := r.Delete(ctx, "b"); !lerrors.Is(err, lerrors.ErrCodeNotFound) {
		t.Errorf("second Delete() error = %v, want NOT_FOUND", err)
	}
	if err := r.Delete(ctx, "a/b"); !lerrors.Is(err, lerrors.ErrCodeInvalidName) {
		t.Errorf("Delete(a/b) error = %v, want INVALID_NAME", err)
	}
}
