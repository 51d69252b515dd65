package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestService(populate Populator) (*Service, *MemoryStore) {
	store := NewMemoryStore()
	return NewService(store, zap.NewNop(), populate), store
}

func TestService_CreateGeneratesSlugAndOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)

	a, err := svc.Create(ctx, Record{Kind: KindService, Title: " Cloud Migration "})
	require.NoError(t, err)
	assert.Equal(t, "Cloud Migration", a.Title)
	assert.Equal(t, "cloud-migration", a.Slug)
	assert.Equal(t, 1, a.Order)

	b, err := svc.Create(ctx, Record{Kind: KindService, Title: "Cloud migration"})
	require.NoError(t, err)
	assert.Equal(t, "cloud-migration-2", b.Slug)
	assert.Equal(t, 2, b.Order)

	c, err := svc.Create(ctx, Record{Kind: KindService, Title: "Cloud-Migration", Order: 10})
	require.NoError(t, err)
	assert.Equal(t, "cloud-migration-3", c.Slug)
	assert.Equal(t, 10, c.Order)

	d, err := svc.Create(ctx, Record{Kind: KindService, Title: "Next"})
	require.NoError(t, err)
	assert.Equal(t, 11, d.Order, "default order follows the current last")
}

func TestService_CreateNonLatinTitleFallsBackToKind(t *testing.T) {
	svc, _ := newTestService(nil)
	r, err := svc.Create(context.Background(), Record{Kind: KindPage, Title: "日本語"})
	require.NoError(t, err)
	assert.Equal(t, "page", r.Slug)
}

func TestService_CreateExplicitSlug(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)

	_, err := svc.Create(ctx, Record{Kind: KindPage, Title: "Home", Slug: "home"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, Record{Kind: KindPage, Title: "Home again", Slug: "home"})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Create(ctx, Record{Kind: KindPage, Title: "Bad", Slug: "Not A Slug"})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestService_CreateValidation(t *testing.T) {
	svc, _ := newTestService(nil)
	tests := []struct {
		name string
		rec  Record
	}{
		{"missing title", Record{Kind: KindPage, Title: "   "}},
		{"unknown kind", Record{Kind: "widget", Title: "X"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.rec)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestService_CreateIndustryUsesTemplate(t *testing.T) {
	var gotName, gotSlug string
	svc, _ := newTestService(func(name, slug string) (map[string]any, error) {
		gotName, gotSlug = name, slug
		return map[string]any{"sections": []any{map[string]any{"type": "hero", "title": name}}}, nil
	})

	r, err := svc.Create(context.Background(), Record{Kind: KindIndustry, Title: "Fintech"})
	require.NoError(t, err)
	assert.Equal(t, "Fintech", gotName)
	assert.Equal(t, "fintech", gotSlug)
	assert.Contains(t, r.Content, "sections")
}

func TestService_CreateIndustryKeepsGivenContent(t *testing.T) {
	called := false
	svc, _ := newTestService(func(string, string) (map[string]any, error) {
		called = true
		return nil, nil
	})

	given := map[string]any{"sections": []any{}}
	r, err := svc.Create(context.Background(), Record{Kind: KindIndustry, Title: "Retail", Content: given})
	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, given, r.Content)
}

func TestService_CreateTemplateFailure(t *testing.T) {
	boom := errors.New("boom")
	svc, store := newTestService(func(string, string) (map[string]any, error) { return nil, boom })

	_, err := svc.Create(context.Background(), Record{Kind: KindIndustry, Title: "Retail"})
	assert.ErrorIs(t, err, boom)

	list, _ := store.List(context.Background(), KindIndustry, Filter{})
	assert.Empty(t, list)
}

func TestService_PublishedHidesDrafts(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)
	_, _ = svc.Create(ctx, Record{Kind: KindPage, Title: "Draft"})
	_, _ = svc.Create(ctx, Record{Kind: KindPage, Title: "Live", Published: true})

	_, err := svc.Published(ctx, KindPage, "draft")
	assert.ErrorIs(t, err, ErrNotFound)

	r, err := svc.Published(ctx, KindPage, "live")
	require.NoError(t, err)
	assert.Equal(t, "Live", r.Title)

	r, err = svc.BySlug(ctx, KindPage, "draft")
	require.NoError(t, err)
	assert.Equal(t, "Draft", r.Title)
}

func TestService_UpdateValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)
	r, _ := svc.Create(ctx, Record{Kind: KindService, Title: "Web"})

	empty := " "
	_, err := svc.Update(ctx, KindService, r.ID, Patch{Title: &empty})
	assert.ErrorIs(t, err, ErrInvalid)

	bad := "Bad Slug"
	_, err = svc.Update(ctx, KindService, r.ID, Patch{Slug: &bad})
	assert.ErrorIs(t, err, ErrInvalid)

	title := "  Web Apps "
	updated, err := svc.Update(ctx, KindService, r.ID, Patch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Web Apps", updated.Title)
	assert.Equal(t, "web", updated.Slug, "slug is stable across title edits")
}

func TestService_Reorder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)
	a, _ := svc.Create(ctx, Record{Kind: KindService, Title: "A"})
	b, _ := svc.Create(ctx, Record{Kind: KindService, Title: "B"})
	c, _ := svc.Create(ctx, Record{Kind: KindService, Title: "C"})

	require.NoError(t, svc.ReorderIDs(ctx, KindService, []string{c.ID, a.ID, b.ID}))
	list, err := svc.List(ctx, KindService, Filter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "A", "B"}, titles(list))

	err = svc.Reorder(ctx, KindService, []OrderUpdate{{ID: a.ID, Order: 1}, {ID: a.ID, Order: 2}})
	assert.ErrorIs(t, err, ErrInvalid)

	assert.ErrorIs(t, svc.Reorder(ctx, KindService, nil), ErrInvalid)
	assert.ErrorIs(t, svc.ReorderIDs(ctx, KindService, []string{a.ID, "missing"}), ErrNotFound)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(nil)
	r, _ := svc.Create(ctx, Record{Kind: KindPage, Title: "Gone"})

	require.NoError(t, svc.Delete(ctx, KindPage, r.ID))
	assert.ErrorIs(t, svc.Delete(ctx, KindPage, r.ID), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "nope", r.ID), ErrInvalid)
}

type failingStore struct {
	*MemoryStore
	err error
}

func (f failingStore) List(context.Context, Kind, Filter) ([]Record, error) { return nil, f.err }

func TestService_LogsUnexpectedStoreErrors(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	storeErr := errors.New("disk I/O error")
	svc := NewService(failingStore{NewMemoryStore(), storeErr}, zap.New(core), nil)

	_, err := svc.List(context.Background(), KindService, Filter{})
	assert.ErrorIs(t, err, storeErr)

	entries := logs.FilterMessage("Failed to list content: disk I/O error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "service", entries[0].ContextMap()["kind"])
}

func TestService_DoesNotLogDomainErrors(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	svc := NewService(NewMemoryStore(), zap.New(core), nil)

	err := svc.Delete(context.Background(), KindPage, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, logs.Len())
}

func TestKind(t *testing.T) {
	k, ok := ParseKind("industries")
	assert.True(t, ok)
	assert.Equal(t, KindIndustry, k)

	k, ok = ParseKind("page")
	assert.True(t, ok)
	assert.Equal(t, KindPage, k)

	_, ok = ParseKind("widgets")
	assert.False(t, ok)

	assert.Equal(t, "services", KindService.Plural())
}
