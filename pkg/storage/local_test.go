package storage_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vastra/pkg/storage"
)

func TestLocalDiskRoundTrip(t *testing.T) {
	disk := storage.NewLocal(t.TempDir(), "http://localhost:5000")

	require.NoError(t, disk.Put("uploads/shirt.png", []byte("png-bytes")))
	assert.True(t, disk.Exists("uploads/shirt.png"))

	data, err := disk.Get("uploads/shirt.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	size, err := disk.Size("uploads/shirt.png")
	require.NoError(t, err)
	assert.Equal(t, int64(len("png-bytes")), size)

	assert.Equal(t, "http://localhost:5000/uploads/shirt.png", disk.URL("uploads/shirt.png"))
}

func TestLocalDiskPutStreamCreatesParents(t *testing.T) {
	disk := storage.NewLocal(t.TempDir(), "")

	require.NoError(t, disk.PutStream("a/b/c.txt", bytes.NewReader([]byte("deep"))))

	data, err := disk.Get("a/b/c.txt")
	require.NoError(t, err)
	assert.Equal(t, "deep", string(data))
}

func TestLocalDiskFiles(t *testing.T) {
	disk := storage.NewLocal(t.TempDir(), "")

	require.NoError(t, disk.Put("uploads/a.png", []byte("a")))
	require.NoError(t, disk.Put("uploads/b.jpg", []byte("b")))

	files, err := disk.Files("uploads")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"uploads/a.png", "uploads/b.jpg"}, files)
}

func TestLocalDiskDelete(t *testing.T) {
	disk := storage.NewLocal(t.TempDir(), "")

	require.NoError(t, disk.Put("uploads/gone.png", []byte("x")))
	require.NoError(t, disk.Delete("uploads/gone.png"))
	assert.False(t, disk.Exists("uploads/gone.png"))

	// Deleting an absent file is not an error.
	assert.NoError(t, disk.Delete("uploads/never-there.png"))
}
