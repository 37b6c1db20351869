package local

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/flowstore/session"
	"github.com/hupe1980/flowstore/settings"
	"github.com/hupe1980/flowstore/storage"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	return New(settings.Static{Dir: dir}, session.NewInMemoryStore()), dir
}

func TestNewIsReadyWithoutIO(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "never-created")
	store := New(settings.Static{Dir: root}, session.NewInMemoryStore())

	assert.Equal(t, storage.StateReady, store.State())
	// Construction must not have touched the filesystem.
	_, err := os.Stat(root)
	assert.True(t, os.IsNotExist(err))
}

func TestSaveGetRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	payloads := map[string][]byte{
		"empty":  {},
		"small":  []byte("hello"),
		"binary": {0x00, 0xff, 0x10, 0x00, 0x7f},
	}
	for name, data := range payloads {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, store.Save(ctx, "f1", name+".bin", data))
			got, err := store.Get(ctx, "f1", name+".bin")
			assert.NoError(t, err)
			assert.Equal(t, data, got)
		})
	}
}

func TestSaveOverwrites(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, "f1", "x.txt", []byte("first")))
	assert.NoError(t, store.Save(ctx, "f1", "x.txt", []byte("second")))

	got, err := store.Get(ctx, "f1", "x.txt")
	assert.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestGetMissingFile(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Get(context.Background(), "f1", "missing.txt")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Contains(t, err.Error(), "missing.txt")
	assert.Contains(t, err.Error(), "f1")
}

func TestListFilesExcludesDirectories(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, "f1", "a.txt", []byte("a")))
	assert.NoError(t, store.Save(ctx, "f1", "b.txt", []byte("b")))
	assert.NoError(t, os.MkdirAll(filepath.Join(dir, "f1", "nested"), 0o755))

	names, err := store.List(ctx, "f1")
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"a.txt", "b.txt"}, names)
}

func TestListMissingFlow(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.List(context.Background(), "no-such-flow")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, "f1", "x.txt", []byte("data")))
	assert.NoError(t, store.Delete(ctx, "f1", "x.txt"))

	_, err := store.Get(ctx, "f1", "x.txt")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Deleting again (and deleting in a flow that never existed) succeeds.
	assert.NoError(t, store.Delete(ctx, "f1", "x.txt"))
	assert.NoError(t, store.Delete(ctx, "never", "x.txt"))
}

func TestBuildFullPathIsPure(t *testing.T) {
	store, dir := newTestStore(t)

	first := store.BuildFullPath("f1", "x.txt")
	second := store.BuildFullPath("f1", "x.txt")
	assert.Equal(t, first, second)
	assert.Equal(t, filepath.Join(dir, "f1", "x.txt"), first)

	// No directory or file may appear as a side effect.
	_, err := os.Stat(filepath.Join(dir, "f1"))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveCreatesFlowDirectoryLazily(t *testing.T) {
	store, dir := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, "f1", "x.txt", []byte("data")))

	raw, err := os.ReadFile(store.BuildFullPath("f1", "x.txt"))
	assert.NoError(t, err)
	assert.Equal(t, []byte("data"), raw)

	info, err := os.Stat(filepath.Join(dir, "f1"))
	assert.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveDirectoryCollision(t *testing.T) {
	store, dir := newTestStore(t)

	// A directory already occupies the target file name.
	assert.NoError(t, os.MkdirAll(filepath.Join(dir, "f1", "taken"), 0o755))

	err := store.Save(context.Background(), "f1", "taken", []byte("data"))
	assert.ErrorIs(t, err, storage.ErrIsDirectory)
}

func TestConcurrentSavesLeaveWholePayload(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	a := bytes.Repeat([]byte("a"), 1<<16)
	b := bytes.Repeat([]byte("b"), 1<<16)

	var wg sync.WaitGroup
	for _, payload := range [][]byte{a, b} {
		payload := payload
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.Save(ctx, "f1", "race.bin", payload))
		}()
	}
	wg.Wait()

	got, err := store.Get(ctx, "f1", "race.bin")
	assert.NoError(t, err)
	if !bytes.Equal(got, a) && !bytes.Equal(got, b) {
		t.Fatalf("expected one whole payload, got %d bytes", len(got))
	}
}

func TestTeardownIsReentrant(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Teardown(ctx))
	assert.NoError(t, store.Teardown(ctx))
}
