package assets

import (
	"bytes"
	"fmt"
	"image/color"
	_ "image/png"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ImageStore loads and releases the level's bitmaps.
type ImageStore interface {
	// LoadScaled loads path resized to w x h. Missing files give a placeholder.
	LoadScaled(path string, w, h int) *ebiten.Image
	// NewImage allocates an empty offscreen image.
	NewImage(w, h int) *ebiten.Image
	// Release frees an image from LoadScaled or NewImage. nil is ignored.
	Release(img *ebiten.Image)
}

var placeholderColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// ImageLoader is an ImageStore reading PNG files from a data directory.
type ImageLoader struct {
	fsys fs.FS
}

func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{fsys: fsys}
}

func (l *ImageLoader) LoadScaled(path string, w, h int) *ebiten.Image {
	w, h = max(w, 1), max(h, 1)
	src, err := l.decode(path)
	if err != nil {
		log.Warn("using placeholder image", "path", path, "err", err)
		img := ebiten.NewImage(w, h)
		img.Fill(placeholderColor)
		return img
	}
	defer src.Deallocate()

	dst := ebiten.NewImage(w, h)
	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(sw), float64(h)/float64(sh))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}

func (l *ImageLoader) decode(path string) (*ebiten.Image, error) {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		img.Deallocate()
		return nil, fmt.Errorf("image %s is empty", path)
	}
	return img, nil
}

func (l *ImageLoader) NewImage(w, h int) *ebiten.Image {
	return ebiten.NewImage(max(w, 1), max(h, 1))
}

func (l *ImageLoader) Release(img *ebiten.Image) {
	if img != nil {
		img.Deallocate()
	}
}
