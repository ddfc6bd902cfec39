package store

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petgoggles/goggles"
)

func TestNew(t *testing.T) {
	t.Run("creates the root directory", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "uploads")
		st, err := New(root)
		require.NoError(t, err)
		assert.Equal(t, root, st.Root())
		assert.DirExists(t, root)
	})

	t.Run("accepts an existing root", func(t *testing.T) {
		root := t.TempDir()
		_, err := New(root)
		require.NoError(t, err)
	})

	t.Run("fails when the root cannot be created", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "occupied")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		_, err := New(filepath.Join(file, "uploads"))
		require.Error(t, err)
		assert.True(t, goggles.IsStorageWrite(err))
	})
}

func TestPutResolveRoundTrip(t *testing.T) {
	t.Run("resolve returns the written bytes", func(t *testing.T) {
		st, err := New(t.TempDir())
		require.NoError(t, err)

		id := goggles.NewImageID()
		require.NoError(t, st.Put(id, "jpg", []byte("image bytes")))

		path, err := st.Resolve(id)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(st.Root(), id+".jpg"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("image bytes"), data)
	})

	t.Run("each canonical extension resolves", func(t *testing.T) {
		st, err := New(t.TempDir())
		require.NoError(t, err)

		for _, ext := range goggles.Extensions() {
			id := goggles.NewImageID()
			require.NoError(t, st.Put(id, ext, []byte("data-"+ext)))

			path, err := st.Resolve(id)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(st.Root(), id+"."+ext), path)
		}
	})

	t.Run("unknown identifier is not found", func(t *testing.T) {
		st, err := New(t.TempDir())
		require.NoError(t, err)

		_, err = st.Resolve("nonexistent-id")
		require.Error(t, err)
		assert.True(t, goggles.IsNotFound(err))
	})

	t.Run("unrelated files in the root are never matched", func(t *testing.T) {
		st, err := New(t.TempDir())
		require.NoError(t, err)

		// Shared temporary areas can hold other writers' files.
		require.NoError(t, os.WriteFile(filepath.Join(st.Root(), "stray.tmp"), []byte("x"), 0o644))
		id := goggles.NewImageID()
		require.NoError(t, os.WriteFile(filepath.Join(st.Root(), id+".gif"), []byte("x"), 0o644))

		_, err = st.Resolve(id)
		require.Error(t, err)
		assert.True(t, goggles.IsNotFound(err))
	})
}

func TestResolveProbeOrder(t *testing.T) {
	t.Run("jpg wins over png and webp", func(t *testing.T) {
		st, err := New(t.TempDir())
		require.NoError(t, err)

		id := goggles.NewImageID()
		require.NoError(t, st.Put(id, "webp", []byte("webp")))
		require.NoError(t, st.Put(id, "png", []byte("png")))
		require.NoError(t, st.Put(id, "jpg", []byte("jpg")))

		path, err := st.Resolve(id)
		require.NoError(t, err)
		assert.Equal(t, ".jpg", filepath.Ext(path))
	})

	t.Run("png wins over webp when jpg is absent", func(t *testing.T) {
		st, err := New(t.TempDir())
		require.NoError(t, err)

		id := goggles.NewImageID()
		require.NoError(t, st.Put(id, "webp", []byte("webp")))
		require.NoError(t, st.Put(id, "png", []byte("png")))

		path, err := st.Resolve(id)
		require.NoError(t, err)
		assert.Equal(t, ".png", filepath.Ext(path))
	})
}

func TestPutFailure(t *testing.T) {
	t.Run("write errors surface as storage write errors", func(t *testing.T) {
		root := filepath.Join(t.TempDir(), "uploads")
		st, err := New(root)
		require.NoError(t, err)
		require.NoError(t, os.RemoveAll(root))

		err = st.Put(goggles.NewImageID(), "jpg", []byte("data"))
		require.Error(t, err)
		assert.True(t, goggles.IsStorageWrite(err))
		assert.Equal(t, 500, goggles.StatusCodeOf(err))
	})
}

func TestOpen(t *testing.T) {
	t.Run("returns the stored bytes and detected extension", func(t *testing.T) {
		st, err := New(t.TempDir())
		require.NoError(t, err)

		id := goggles.NewImageID()
		require.NoError(t, st.Put(id, "webp", []byte("webp bytes")))

		r, ext, err := st.Open(id)
		require.NoError(t, err)
		defer r.Close()

		assert.Equal(t, "webp", ext)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, []byte("webp bytes"), data)
	})

	t.Run("unknown identifier is not found", func(t *testing.T) {
		st, err := New(t.TempDir())
		require.NoError(t, err)

		_, _, err = st.Open("nonexistent-id")
		require.Error(t, err)
		assert.True(t, goggles.IsNotFound(err))
	})
}
