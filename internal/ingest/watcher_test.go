package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// A rapid burst of drops with a near-zero debounce makes the timer
// callback fire while the event loop is still recording paths. The two
// goroutines share the coalescing map, so every drop must still come
// out exactly once.
func TestWatcherCoalescesConcurrentBursts(t *testing.T) {
	root := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, errs, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: time.Microsecond,
	})
	require.NoError(t, err)

	const n = 100
	want := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		p := filepath.Join(root, fmt.Sprintf("annual_%03d.xlsx", i))
		require.NoError(t, os.WriteFile(p, []byte("workbook"), 0o644))
		want[p] = struct{}{}
	}

	seen := make(map[string]struct{}, n)
	deadline := time.After(5 * time.Second)
	for len(seen) < n {
		select {
		case p, ok := <-events:
			require.True(t, ok, "event channel closed early")
			if _, expected := want[p]; expected {
				seen[p] = struct{}{}
			}
		case err := <-errs:
			t.Fatalf("watcher error: %v", err)
		case <-deadline:
			t.Fatalf("saw %d of %d dropped workbooks", len(seen), n)
		}
	}
}
