package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/content/storetest"
)

// setupTestStore creates an in-memory store with the schema initialized.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(MemoryPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	return s
}

func TestStore_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) content.Store { return setupTestStore(t) })
}

func TestOpen_CreatesFileAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "showcase.db")

	s, err := Open(path)
	require.NoError(t, err)

	v, err := s.SchemaVersion()
	require.NoError(t, err)
	assert.Equal(t, currentSchemaVersion, v)

	_, err = s.Create(context.Background(), content.Record{Kind: content.KindPage, Title: "Home", Slug: "home"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	r, err := reopened.GetBySlug(context.Background(), content.KindPage, "home")
	require.NoError(t, err)
	assert.Equal(t, "Home", r.Title)
}

func TestStore_GeneratesUUIDs(t *testing.T) {
	s := setupTestStore(t)
	defer s.Close()

	a, err := s.Create(context.Background(), content.Record{Kind: content.KindPage, Title: "A", Slug: "a"})
	require.NoError(t, err)
	b, err := s.Create(context.Background(), content.Record{Kind: content.KindPage, Title: "B", Slug: "b"})
	require.NoError(t, err)

	assert.Len(t, a.ID, 36)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestStore_Timestamps(t *testing.T) {
	s := setupTestStore(t)
	defer s.Close()

	t0 := time.Date(2024, 5, 1, 10, 0, 0, 500, time.UTC)
	s.now = func() time.Time { return t0 }

	r, err := s.Create(context.Background(), content.Record{Kind: content.KindPage, Title: "A", Slug: "a"})
	require.NoError(t, err)
	assert.Equal(t, t0.Truncate(time.Second), r.CreatedAt)

	t1 := t0.Add(time.Hour)
	s.now = func() time.Time { return t1 }
	title := "A2"
	u, err := s.Update(context.Background(), content.KindPage, r.ID, content.Patch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, t0.Truncate(time.Second), u.CreatedAt)
	assert.Equal(t, t1.Truncate(time.Second), u.UpdatedAt)

	got, err := s.Get(context.Background(), content.KindPage, r.ID)
	require.NoError(t, err)
	assert.Equal(t, u.UpdatedAt, got.UpdatedAt)
}

func TestStore_EmptyContentStoredAsNull(t *testing.T) {
	s := setupTestStore(t)
	defer s.Close()

	r, err := s.Create(context.Background(), content.Record{Kind: content.KindPage, Title: "A", Slug: "a"})
	require.NoError(t, err)

	var isNull bool
	err = s.DB().QueryRow(`SELECT content IS NULL FROM records WHERE id = ?`, r.ID).Scan(&isNull)
	require.NoError(t, err)
	assert.True(t, isNull)

	got, err := s.Get(context.Background(), content.KindPage, r.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Content)
}

func TestStore_CorruptContent(t *testing.T) {
	s := setupTestStore(t)
	defer s.Close()

	r, err := s.Create(context.Background(), content.Record{Kind: content.KindPage, Title: "A", Slug: "a"})
	require.NoError(t, err)
	_, err = s.DB().Exec(`UPDATE records SET content = '{not json' WHERE id = ?`, r.ID)
	require.NoError(t, err)

	_, err = s.Get(context.Background(), content.KindPage, r.ID)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, content.ErrNotFound)
}

func TestStore_ServiceIntegration(t *testing.T) {
	s := setupTestStore(t)
	defer s.Close()
	svc := content.NewService(s, nil, nil)
	ctx := context.Background()

	a, err := svc.Create(ctx, content.Record{Kind: content.KindService, Title: "Data Platforms"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, content.Record{Kind: content.KindService, Title: "Data platforms"})
	require.NoError(t, err)

	assert.Equal(t, "data-platforms", a.Slug)
	assert.Equal(t, "data-platforms-2", b.Slug)
	assert.Equal(t, 2, b.Order)

	require.NoError(t, svc.ReorderIDs(ctx, content.KindService, []string{b.ID, a.ID}))
	list, err := svc.List(ctx, content.KindService, content.Filter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)
}
