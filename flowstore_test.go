package flowstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/flowstore/settings"
	"github.com/hupe1980/flowstore/storage"
	"github.com/hupe1980/flowstore/storage/local"
)

func TestNewDefaultsToInMemory(t *testing.T) {
	fs := New()

	_, ok := fs.Store().(*storage.InMemoryStore)
	assert.True(t, ok, "expected in-memory backend by default")

	ctx := context.Background()
	assert.NoError(t, fs.Save(ctx, "f1", "a.txt", []byte("hello")))

	got, err := fs.Get(ctx, "f1", "a.txt")
	assert.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	names, err := fs.List(ctx, "f1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, names)

	assert.NoError(t, fs.Delete(ctx, "f1", "a.txt"))
	assert.NoError(t, fs.Teardown(ctx))
}

func TestNewWithSettingsUsesLocalBackend(t *testing.T) {
	dir := t.TempDir()
	fs := New(func(o *Options) {
		o.Settings = settings.Static{Dir: dir}
	})

	_, ok := fs.Store().(*local.Store)
	assert.True(t, ok, "expected local disk backend when settings are provided")

	ctx := context.Background()
	assert.NoError(t, fs.Save(ctx, "f1", "a.txt", []byte("on disk")))

	got, err := fs.Get(ctx, "f1", "a.txt")
	assert.NoError(t, err)
	assert.Equal(t, []byte("on disk"), got)
}

func TestNewWithStoreOverride(t *testing.T) {
	override := storage.NewInMemoryStore()
	fs := New(func(o *Options) {
		o.Store = override
	})
	assert.Same(t, override, fs.Store().(*storage.InMemoryStore))
}
