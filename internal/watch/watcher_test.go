package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerCoalescesChanges(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	d.Add("b.oss")
	d.Add("a.oss")
	d.Add("b.oss")

	select {
	case <-d.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("debouncer never signalled")
	}
	assert.Equal(t, []string{"a.oss", "b.oss"}, d.Drain())
	assert.Empty(t, d.Drain())
}

func TestDebouncerStop(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	d.Add("a.oss")
	d.Stop()
	d.Add("b.oss")

	select {
	case <-d.Ready():
		t.Fatal("stopped debouncer signalled")
	case <-time.After(50 * time.Millisecond):
	}
	assert.Empty(t, d.Drain())
}

func startWatcher(t *testing.T, config Config) <-chan []string {
	t.Helper()

	w, err := New(config)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	changes := make(chan []string, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Watch(ctx, func(paths []string) { changes <- paths })
	}()

	t.Cleanup(func() {
		cancel()
		assert.NoError(t, <-done)
		assert.NoError(t, w.Close())
	})
	return changes
}

func nextBatch(t *testing.T, changes <-chan []string) []string {
	t.Helper()
	select {
	case paths := <-changes:
		return paths
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
		return nil
	}
}

func TestWatchDirectory(t *testing.T) {
	dir := t.TempDir()
	changes := startWatcher(t, Config{
		Paths:      []string{dir},
		Extensions: []string{".oss"},
		Debounce:   20 * time.Millisecond,
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	path := filepath.Join(dir, "user.oss")
	require.NoError(t, os.WriteFile(path, []byte("class=User;"), 0o644))

	assert.Equal(t, []string{path}, nextBatch(t, changes))
}

func TestWatchNewSubdirectory(t *testing.T) {
	dir := t.TempDir()
	changes := startWatcher(t, Config{
		Paths:      []string{dir},
		Extensions: []string{".oss"},
		Debounce:   20 * time.Millisecond,
	})

	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))
	// give the watcher time to register the new directory
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(sub, "field.oss")
	require.NoError(t, os.WriteFile(path, []byte("field;"), 0o644))

	assert.Contains(t, nextBatch(t, changes), path)
}

func TestWatchSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "user.oss")
	require.NoError(t, os.WriteFile(path, []byte("class=User;"), 0o644))

	changes := startWatcher(t, Config{
		Paths:      []string{path},
		Extensions: []string{".oss"},
		Debounce:   20 * time.Millisecond,
	})

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.oss"), []byte("field;"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("class=Admin;"), 0o644))

	assert.Equal(t, []string{path}, nextBatch(t, changes))
}

func TestNewRejectsMissingPath(t *testing.T) {
	_, err := New(Config{Paths: []string{filepath.Join(t.TempDir(), "absent.oss")}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to watch")
}

func TestRelevant(t *testing.T) {
	named := filepath.Join("/src", "named.txt")
	w := &Watcher{
		files:  map[string]bool{named: true},
		roots:  []string{"/docs"},
		config: Config{Extensions: []string{".OSS"}},
	}
	write := func(path string) bool {
		return w.relevant(fsnotify.Event{Name: path, Op: fsnotify.Write}, path)
	}

	assert.True(t, write(named))
	assert.True(t, write("/docs/sub/a.oss"))
	assert.False(t, write("/docs/a.yaml"))
	assert.False(t, write("/docs/.a.oss"))
	assert.False(t, write("/docsets/a.oss"))
	assert.False(t, write("/src/a.oss"))
	assert.False(t, w.relevant(fsnotify.Event{Name: named, Op: fsnotify.Chmod}, named))
}
