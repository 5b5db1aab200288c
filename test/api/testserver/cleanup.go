//go:build api

package testserver

import (
	"testing"

	"clubhub/test/testutil"

	"github.com/stretchr/testify/require"
)

// CleanupBetweenTests clears all data between tests.
// Call this at the start of each test function for isolation.
func (ts *TestServer) CleanupBetweenTests(t *testing.T) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Documents go, indexes stay
	require.NoError(t, ts.MongoDB.CleanupCollections(ctx), "failed to cleanup MongoDB collections")

	// Sessions and cached users
	require.NoError(t, ts.Redis.FlushDB(ctx), "failed to flush Redis")

	// Club images
	require.NoError(t, ts.MinIO.ClearBucket(ctx), "failed to clear MinIO bucket")
}
