package lib

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewHandleCopiesBytes(t *testing.T) {
	content := []byte("some video bytes")
	file, err := NewSelectedFile(writeTempFile(t, "clip.mp4", content))
	require.NoError(t, err)

	h, err := NewPreviewHandle(file)
	require.NoError(t, err)
	defer h.Release()

	require.NotEmpty(t, h.Path())
	assert.NotEqual(t, file.Path, h.Path(), "preview renders from its own copy")

	got, err := os.ReadFile(h.Path())
	require.NoError(t, err)
	assert.Equal(t, content, got)

	// Videos get no thumbnail.
	assert.Empty(t, h.Thumbnail())
}

func TestPreviewHandleReleaseIsIdempotent(t *testing.T) {
	file, err := NewSelectedFile(writeTempPNG(t, "a.png"))
	require.NoError(t, err)

	h, err := NewPreviewHandle(file)
	require.NoError(t, err)
	tmpPath := h.Path()

	h.Release()
	_, statErr := os.Stat(tmpPath)
	assert.True(t, os.IsNotExist(statErr), "temp copy removed on release")
	assert.Empty(t, h.Path())

	// Releasing again, or releasing nothing, must be safe.
	h.Release()
	var absent *PreviewHandle
	absent.Release()
}

func TestPreviewHandleDecodesImageThumbnail(t *testing.T) {
	file, err := NewSelectedFile(writeTempPNG(t, "a.png"))
	require.NoError(t, err)

	h, err := NewPreviewHandle(file)
	require.NoError(t, err)
	defer h.Release()

	w, hgt := h.Dimensions()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, hgt)
	assert.NotEmpty(t, h.Thumbnail())
}

func TestPreviewHandleSurvivesUndecodableImage(t *testing.T) {
	// Declared image/png, but the bytes are garbage.
	file, err := NewSelectedFile(writeTempFile(t, "broken.png", []byte("not a png")))
	require.NoError(t, err)

	h, err := NewPreviewHandle(file)
	require.NoError(t, err)
	defer h.Release()

	assert.NotEmpty(t, h.Path())
	assert.Empty(t, h.Thumbnail())
}
