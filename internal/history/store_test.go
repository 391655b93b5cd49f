// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/office-convert/pkg/types"
)

func testStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "state", "history.db")
	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store, path
}

func conversion(batch, source string, status types.ConversionStatus) types.Conversion {
	return types.Conversion{
		Batch:       batch,
		Family:      "text",
		Backend:     "soffice",
		Source:      source,
		Output:      source + "x",
		Code:        12,
		Ext:         ".docx",
		Status:      status,
		ConvertedAt: time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC),
	}
}

func TestStore_RecordAndRecent(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(conversion("b1", "/docs/a.doc", types.ConversionDone)))
	require.NoError(t, store.Record(conversion("b1", "/docs/b.doc", types.ConversionDone)))
	failed := conversion("b2", "/docs/c.doc", types.ConversionFailed)
	failed.Error = "document is corrupt"
	require.NoError(t, store.Record(failed))

	all, err := store.Recent(ctx, QueryOptions{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "/docs/c.doc", all[0].Source, "newest first")
	assert.Equal(t, types.ConversionFailed, all[0].Status)
	assert.Equal(t, "document is corrupt", all[0].Error)
	assert.Equal(t, "", all[1].Error)
	assert.Equal(t, 12, all[2].Code)
	assert.True(t, all[2].ConvertedAt.Equal(time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)))
}

func TestStore_RecentFilters(t *testing.T) {
	store, _ := testStore(t)
	ctx := context.Background()

	require.NoError(t, store.Record(conversion("b1", "/docs/a.doc", types.ConversionDone)))
	require.NoError(t, store.Record(conversion("b1", "/docs/b.doc", types.ConversionFailed)))
	require.NoError(t, store.Record(conversion("b2", "/docs/a.doc", types.ConversionDone)))

	tests := []struct {
		name string
		opts QueryOptions
		want int
	}{
		{name: "by batch", opts: QueryOptions{Batch: "b1"}, want: 2},
		{name: "by source", opts: QueryOptions{Source: "/docs/a.doc"}, want: 2},
		{name: "by status", opts: QueryOptions{Status: types.ConversionFailed}, want: 1},
		{name: "limit", opts: QueryOptions{Limit: 1}, want: 1},
		{name: "no match", opts: QueryOptions{Batch: "b9"}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := store.Recent(ctx, tt.opts)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestStore_ReopenKeepsEntries(t *testing.T) {
	store, path := testStore(t)
	require.NoError(t, store.Record(conversion("b1", "/docs/a.doc", types.ConversionDone)))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Recent(context.Background(), QueryOptions{})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestStore_RecentRejectsBadTimestamp(t *testing.T) {
	store, _ := testStore(t)
	_, err := store.db.Exec(
		`INSERT INTO conversions (batch, family, backend, source, output, code, ext, status, converted_at)
		VALUES ('b1', 'text', 'com', '/docs/a.doc', '/docs/a.docx', 12, '.docx', 'converted', 'yesterday')`)
	require.NoError(t, err)

	_, err = store.Recent(context.Background(), QueryOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing converted_at of /docs/a.doc")
}
