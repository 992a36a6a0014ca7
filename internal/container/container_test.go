package container

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/financas/internal/config"
	"fjacquet/financas/internal/directory"
	"fjacquet/financas/internal/models"
	"fjacquet/financas/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.Log.Level = "debug"
	c.Log.Format = "text"
	c.Data.Backend = config.BackendFile
	c.Data.File = filepath.Join(t.TempDir(), "financas.json")
	c.Users.DefaultName = "Principal"
	c.History.RecentLimit = 10
	c.Clock.Timezone = "UTC"
	c.Server.Port = 5000
	c.Server.Path = "/whatsapp"
	return c
}

func TestNewContainer_NilConfig(t *testing.T) {
	_, err := NewContainer(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration cannot be nil")
}

func TestNewContainer_Backends(t *testing.T) {
	tests := []struct {
		backend string
		want    interface{}
	}{
		{config.BackendFile, &store.FileStore{}},
		{config.BackendMemory, &store.MemoryStore{}},
		{config.BackendSQLite, &store.SQLiteStore{}},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Data.Backend = tt.backend
			cfg.Data.SQLitePath = filepath.Join(t.TempDir(), "financas.db")

			c, err := NewContainer(cfg, WithLogOutput(&bytes.Buffer{}))
			require.NoError(t, err)
			defer c.Close()

			assert.IsType(t, tt.want, c.GetStore())
			assert.NotNil(t, c.GetService())
			assert.NotNil(t, c.GetClassifier())
			assert.NotNil(t, c.GetRenderer())
			assert.Same(t, cfg, c.GetConfig())
		})
	}
}

func TestNewContainer_UnknownBackend(t *testing.T) {
	cfg := testConfig(t)
	cfg.Data.Backend = "redis"

	_, err := NewContainer(cfg, WithLogOutput(&bytes.Buffer{}))
	assert.Error(t, err)
}

func TestNewContainer_KeywordsFile(t *testing.T) {
	cfg := testConfig(t)
	cfg.Keywords.File = filepath.Join(t.TempDir(), "missing.yaml")

	// a missing keywords file only logs a warning
	var logs bytes.Buffer
	_, err := NewContainer(cfg, WithLogOutput(&logs))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "Keywords file not found")
}

func TestContainer_ServiceEndToEnd(t *testing.T) {
	cfg := testConfig(t)
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	mem := store.NewMemoryStore(cfg.Users.DefaultName)

	c, err := NewContainer(cfg,
		WithLogOutput(&bytes.Buffer{}),
		WithClock(directory.FixedClock(now)),
		WithStore(mem))
	require.NoError(t, err)

	reply, err := c.GetService().Process(context.Background(), "recebi salário de 3000")
	require.NoError(t, err)
	assert.Contains(t, reply, "R$ 3000.00 - salário")
	assert.Equal(t, 1, mem.Saves())
	assert.NoError(t, c.Close())
}

type keywordSource struct {
	cfg models.KeywordConfig
	err error
}

func (k keywordSource) LoadKeywords() (models.KeywordConfig, error) { return k.cfg, k.err }

func TestNewContainer_WithKeywords(t *testing.T) {
	cfg := testConfig(t)
	mem := store.NewMemoryStore(cfg.Users.DefaultName)

	c, err := NewContainer(cfg,
		WithLogOutput(&bytes.Buffer{}),
		WithStore(mem),
		WithKeywords(keywordSource{cfg: models.KeywordConfig{Expense: []string{"torrei"}}}))
	require.NoError(t, err)

	reply, err := c.GetService().Process(context.Background(), "torrei 80 no bar")
	require.NoError(t, err)
	assert.Contains(t, reply, "Gasto registrado")

	_, err = NewContainer(cfg,
		WithLogOutput(&bytes.Buffer{}),
		WithKeywords(keywordSource{err: errors.New("bad yaml")}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load keywords")
}
