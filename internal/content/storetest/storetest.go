// Package storetest runs the shared behavioral checks every content.Store
// implementation must pass.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/showcase/internal/content"
)

// Run exercises a fresh store from newStore in each subtest.
func Run(t *testing.T, newStore func(t *testing.T) content.Store) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s content.Store)
	}{
		{"CreateAndGet", testCreateAndGet},
		{"ContentRoundTrip", testContentRoundTrip},
		{"SlugUniquePerKind", testSlugUniquePerKind},
		{"ListOrderAndFilter", testListOrderAndFilter},
		{"Update", testUpdate},
		{"UpdateConflict", testUpdateConflict},
		{"Delete", testDelete},
		{"ReorderAtomic", testReorderAtomic},
		{"KindIsolation", testKindIsolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			t.Cleanup(func() { _ = s.Close() })
			tt.fn(t, s)
		})
	}
}

func create(t *testing.T, s content.Store, r content.Record) content.Record {
	t.Helper()
	out, err := s.Create(context.Background(), r)
	require.NoError(t, err)
	return out
}

func titles(rs []content.Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Title
	}
	return out
}

func testCreateAndGet(t *testing.T, s content.Store) {
	ctx := context.Background()
	before := time.Now().Add(-time.Second)

	r := create(t, s, content.Record{Kind: content.KindService, Title: "Web", Slug: "web", Order: 3, Published: true})
	assert.NotEmpty(t, r.ID)
	assert.False(t, r.CreatedAt.Before(before.Truncate(time.Second)))
	assert.False(t, r.UpdatedAt.IsZero())

	got, err := s.Get(ctx, content.KindService, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, "Web", got.Title)
	assert.Equal(t, 3, got.Order)
	assert.True(t, got.Published)
	assert.True(t, r.CreatedAt.Equal(got.CreatedAt))

	bySlug, err := s.GetBySlug(ctx, content.KindService, "web")
	require.NoError(t, err)
	assert.Equal(t, r.ID, bySlug.ID)

	_, err = s.Get(ctx, content.KindService, "missing")
	assert.ErrorIs(t, err, content.ErrNotFound)
	_, err = s.GetBySlug(ctx, content.KindService, "missing")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func testContentRoundTrip(t *testing.T, s content.Store) {
	body := map[string]any{
		"sections": []any{
			map[string]any{"type": "hero", "title": "Hi"},
		},
	}
	r := create(t, s, content.Record{Kind: content.KindPage, Title: "Home", Slug: "home", Content: body})

	got, err := s.Get(context.Background(), content.KindPage, r.ID)
	require.NoError(t, err)
	sections, ok := got.Content["sections"].([]any)
	require.True(t, ok)
	require.Len(t, sections, 1)
	assert.Equal(t, "hero", sections[0].(map[string]any)["type"])
}

func testSlugUniquePerKind(t *testing.T, s content.Store) {
	create(t, s, content.Record{Kind: content.KindService, Title: "A", Slug: "same"})
	create(t, s, content.Record{Kind: content.KindIndustry, Title: "B", Slug: "same"})

	_, err := s.Create(context.Background(), content.Record{Kind: content.KindService, Title: "C", Slug: "same"})
	assert.ErrorIs(t, err, content.ErrConflict)
}

func testListOrderAndFilter(t *testing.T, s content.Store) {
	ctx := context.Background()
	create(t, s, content.Record{Kind: content.KindService, Title: "Zeta", Slug: "zeta", Order: 1, Published: true})
	create(t, s, content.Record{Kind: content.KindService, Title: "Alpha", Slug: "alpha", Order: 2})
	create(t, s, content.Record{Kind: content.KindService, Title: "Beta", Slug: "beta", Order: 1, Published: true})

	all, err := s.List(ctx, content.KindService, content.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Beta", "Zeta", "Alpha"}, titles(all))

	pub, err := s.List(ctx, content.KindService, content.PublishedOnly())
	require.NoError(t, err)
	assert.Equal(t, []string{"Beta", "Zeta"}, titles(pub))

	empty, err := s.List(ctx, content.KindPage, content.Filter{})
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func testUpdate(t *testing.T, s content.Store) {
	ctx := context.Background()
	r := create(t, s, content.Record{Kind: content.KindPage, Title: "About", Slug: "about"})

	title := "About us"
	pub := true
	body := map[string]any{"sections": []any{}}
	got, err := s.Update(ctx, content.KindPage, r.ID, content.Patch{Title: &title, Published: &pub, Content: &body})
	require.NoError(t, err)
	assert.Equal(t, "About us", got.Title)
	assert.Equal(t, "about", got.Slug)
	assert.True(t, got.Published)

	reloaded, err := s.Get(ctx, content.KindPage, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "About us", reloaded.Title)
	assert.True(t, reloaded.Published)

	_, err = s.Update(ctx, content.KindPage, "missing", content.Patch{Title: &title})
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func testUpdateConflict(t *testing.T, s content.Store) {
	ctx := context.Background()
	a := create(t, s, content.Record{Kind: content.KindPage, Title: "A", Slug: "a"})
	create(t, s, content.Record{Kind: content.KindPage, Title: "B", Slug: "b"})

	taken := "b"
	_, err := s.Update(ctx, content.KindPage, a.ID, content.Patch{Slug: &taken})
	assert.ErrorIs(t, err, content.ErrConflict)

	got, err := s.Get(ctx, content.KindPage, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a", got.Slug)
}

func testDelete(t *testing.T, s content.Store) {
	ctx := context.Background()
	r := create(t, s, content.Record{Kind: content.KindIndustry, Title: "Retail", Slug: "retail"})

	require.NoError(t, s.Delete(ctx, content.KindIndustry, r.ID))
	_, err := s.Get(ctx, content.KindIndustry, r.ID)
	assert.ErrorIs(t, err, content.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, content.KindIndustry, r.ID), content.ErrNotFound)
}

func testReorderAtomic(t *testing.T, s content.Store) {
	ctx := context.Background()
	a := create(t, s, content.Record{Kind: content.KindService, Title: "A", Slug: "a", Order: 1})
	b := create(t, s, content.Record{Kind: content.KindService, Title: "B", Slug: "b", Order: 2})
	c := create(t, s, content.Record{Kind: content.KindService, Title: "C", Slug: "c", Order: 3})

	err := s.Reorder(ctx, content.KindService, []content.OrderUpdate{
		{ID: a.ID, Order: 9},
		{ID: "missing", Order: 1},
	})
	assert.ErrorIs(t, err, content.ErrNotFound)

	list, err := s.List(ctx, content.KindService, content.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, titles(list), "failed reorder applies nothing")

	require.NoError(t, s.Reorder(ctx, content.KindService, []content.OrderUpdate{
		{ID: c.ID, Order: 1},
		{ID: a.ID, Order: 2},
		{ID: b.ID, Order: 3},
	}))
	list, err = s.List(ctx, content.KindService, content.Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, titles(list))
}

func testKindIsolation(t *testing.T, s content.Store) {
	ctx := context.Background()
	r := create(t, s, content.Record{Kind: content.KindService, Title: "Web", Slug: "web"})

	_, err := s.Get(ctx, content.KindPage, r.ID)
	assert.ErrorIs(t, err, content.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, content.KindPage, r.ID), content.ErrNotFound)
	assert.ErrorIs(t, s.Reorder(ctx, content.KindPage, []content.OrderUpdate{{ID: r.ID, Order: 1}}), content.ErrNotFound)
}
