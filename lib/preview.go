package lib

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"

	// decoders for the preview formats
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/chai2010/webp"

	"github.com/charmbracelet/lipgloss"
	"github.com/cloudwego/hertz/cmd/hz/util/logs"
)

// PreviewHandle is a locally resolvable copy of the selected file's bytes,
// created so the UI can render without re-reading the original path. The
// workflow keeps at most one alive; Release is idempotent.
type PreviewHandle struct {
	path       string
	sourceName string
	thumbnail  string
	imgWidth   int
	imgHeight  int

	once   sync.Once
	remove func(string) error
}

// NewPreviewHandle copies the file into a temp location and, for images,
// decodes a terminal thumbnail.
func NewPreviewHandle(file *SelectedFile) (*PreviewHandle, error) {
	src, err := os.Open(file.Path)
	if err != nil {
		return nil, WithStep("preview", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "naoarms-preview-*"+filepath.Ext(file.Path))
	if err != nil {
		return nil, WithStep("preview", err)
	}
	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, WithStep("preview", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, WithStep("preview", err)
	}

	h := &PreviewHandle{
		path:       tmp.Name(),
		sourceName: file.Name,
		remove:     os.Remove,
	}
	if file.IsImage() {
		h.decodeThumbnail()
	}
	return h, nil
}

// Path is the temp copy backing the preview. Empty after Release.
func (h *PreviewHandle) Path() string {
	if h == nil {
		return ""
	}
	return h.path
}

// Thumbnail is an ANSI rendering of the image, empty for videos and for
// images that failed to decode.
func (h *PreviewHandle) Thumbnail() string {
	if h == nil {
		return ""
	}
	return h.thumbnail
}

// Dimensions of the decoded image, zero when unknown.
func (h *PreviewHandle) Dimensions() (int, int) {
	if h == nil {
		return 0, 0
	}
	return h.imgWidth, h.imgHeight
}

// Release drops the temp copy. Safe to call repeatedly and on a nil handle.
func (h *PreviewHandle) Release() {
	if h == nil {
		return
	}
	h.once.Do(func() {
		if h.path != "" {
			if err := h.remove(h.path); err != nil && !os.IsNotExist(err) {
				logs.Warnf("preview cleanup failed: %v\n", err)
			}
		}
		h.path = ""
		h.thumbnail = ""
	})
}

func (h *PreviewHandle) decodeThumbnail() {
	f, err := os.Open(h.path)
	if err != nil {
		logs.Debugf("preview decode: %v\n", err)
		return
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		// Not fatal, the preview falls back to the metadata card.
		logs.Debugf("preview decode %s: %v\n", h.sourceName, err)
		return
	}
	b := img.Bounds()
	h.imgWidth = b.Dx()
	h.imgHeight = b.Dy()
	h.thumbnail = renderThumbnail(img, 44, 24)
}

// renderThumbnail downsamples the image onto terminal cells, two pixels per
// cell via the upper-half-block glyph.
func renderThumbnail(img image.Image, maxCols, maxRows int) string {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return ""
	}

	cols := maxCols
	rows := h * cols / (2 * w)
	if rows > maxRows {
		rows = maxRows
		cols = 2 * w * rows / h
		if cols < 1 {
			cols = 1
		}
	}
	if rows < 1 {
		rows = 1
	}

	var out string
	for row := 0; row < rows; row++ {
		line := ""
		for col := 0; col < cols; col++ {
			top := sampleAt(img, col, row*2, cols, rows*2)
			bottom := sampleAt(img, col, row*2+1, cols, rows*2)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom))
			line += style.Render("▀")
		}
		out += line
		if row < rows-1 {
			out += "\n"
		}
	}
	return out
}

func sampleAt(img image.Image, x, y, gridW, gridH int) string {
	b := img.Bounds()
	px := b.Min.X + x*b.Dx()/gridW
	py := b.Min.Y + y*b.Dy()/gridH
	r, g, bl, _ := img.At(px, py).RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, bl>>8)
}
