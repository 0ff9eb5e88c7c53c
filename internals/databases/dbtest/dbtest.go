// Package dbtest opens throwaway in-memory sqlite stores for tests.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	database "finakihub_backend/internals/databases"
)

var seq atomic.Int64

// SQLite returns a fresh in-memory store that is closed when the test ends.
func SQLite(t testing.TB) *database.Store {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))

	store, err := database.ConnectSQLite(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}
