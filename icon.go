package glfw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/gogpu/glfw/internal/native"
)

// SetIcon sets the window icon from one or more candidate images; the
// system picks the closest size. Images of any color model are accepted.
// Calling it with no images restores the default icon. macOS has no
// per-window icons and ignores the call.
func (w *Window) SetIcon(images ...image.Image) {
	icons := make([]native.Image, 0, len(images))
	for _, img := range images {
		if img == nil || img.Bounds().Empty() {
			continue
		}
		icons = append(icons, iconImage(img))
	}
	w.ctx.lib.SetWindowIcon(w.raw, icons)
}

// NewIcon scales src to a size x size square, the form window managers
// expect for icons.
func NewIcon(src image.Image, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// iconImage converts img into tightly packed non-premultiplied RGBA rows.
func iconImage(img image.Image) native.Image {
	b := img.Bounds()
	n, ok := img.(*image.NRGBA)
	if !ok || n.Stride != 4*b.Dx() || b.Min != (image.Point{}) {
		n = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	}
	return native.Image{
		Width:  int32(b.Dx()),
		Height: int32(b.Dy()),
		Pixels: n.Pix[:4*b.Dx()*b.Dy()],
	}
}
