package docstore

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/showcase/internal/content"
	"github.com/llehouerou/showcase/internal/content/storetest"
)

const emulatorProject = "showcase-test"

// setupEmulatorStore returns a store with an isolated collection prefix, or
// skips when no Firestore emulator is configured.
func setupEmulatorStore(t *testing.T) *Store {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	prefix := "t" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12] + "_"
	s, err := Open(context.Background(), emulatorProject, prefix)
	require.NoError(t, err)
	return s
}

func TestStore_Contract(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	storetest.Run(t, func(t *testing.T) content.Store { return setupEmulatorStore(t) })
}

func TestStore_CollectionPerKind(t *testing.T) {
	s := setupEmulatorStore(t)
	defer s.Close()

	assert.Equal(t, s.prefix+"industries", s.col(content.KindIndustry).ID)
	assert.Equal(t, s.prefix+"services", s.col(content.KindService).ID)
}

func TestOpen_RequiresProject(t *testing.T) {
	_, err := Open(context.Background(), " ", "")
	assert.Error(t, err)
}

func TestToDoc_FromRecord(t *testing.T) {
	r := content.Record{
		Kind:      content.KindPage,
		Title:     "Home",
		Slug:      "home",
		Order:     2,
		Published: true,
		Content:   map[string]any{"sections": []any{}},
	}
	d := toDoc(r)
	assert.Equal(t, "page", d.Kind)
	assert.Equal(t, "home", d.Slug)
	assert.Equal(t, 2, d.Order)
	assert.True(t, d.Published)
	assert.Contains(t, d.Content, "sections")
}
