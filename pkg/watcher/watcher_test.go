package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileWatcherDebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shape.obj")
	other := filepath.Join(dir, "other.obj")
	require.NoError(t, os.WriteFile(path, []byte("# empty\n"), 0o644))

	fw, err := NewFileWatcher(100 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	changes := make(chan string, 10)
	require.NoError(t, fw.Watch([]string{path}, func(p string) {
		changes <- p
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go fw.Run(ctx)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\n"), 0o644))
	}
	require.NoError(t, os.WriteFile(other, []byte("v 0 0 0\n"), 0o644))

	abs, err := filepath.Abs(path)
	require.NoError(t, err)

	select {
	case changed := <-changes:
		require.Equal(t, abs, changed)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}

	select {
	case changed := <-changes:
		t.Fatalf("unexpected second change %s", changed)
	case <-time.After(300 * time.Millisecond):
	}
}
