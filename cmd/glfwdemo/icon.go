package main

import (
	"image"

	"github.com/gogpu/gg"
)

// iconSizes are the candidates handed to the window manager.
var iconSizes = []int{16, 32, 48}

// paintIcon draws the demo icon, three overlapping discs, at size x size.
func paintIcon(size int) image.Image {
	dc := gg.NewContext(size, size)
	defer dc.Close()

	s := float64(size)
	r := s * 0.28

	dc.SetRGBA(1, 0.3, 0.3, 0.9)
	dc.DrawCircle(s*0.38, s*0.38, r)
	_ = dc.Fill()

	dc.SetRGBA(0.3, 1, 0.3, 0.9)
	dc.DrawCircle(s*0.62, s*0.38, r)
	_ = dc.Fill()

	dc.SetRGBA(0.3, 0.3, 1, 0.9)
	dc.DrawCircle(s*0.5, s*0.62, r)
	_ = dc.Fill()

	return dc.Image()
}

func paintIcons() []image.Image {
	icons := make([]image.Image, 0, len(iconSizes))
	for _, size := range iconSizes {
		icons = append(icons, paintIcon(size))
	}
	return icons
}
