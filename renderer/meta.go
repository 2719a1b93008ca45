package renderer

import (
	"image"
	"image/color"

	"github.com/balt-dev/chilly/arguments"
)

// ApplyMeta draws an outline around img by morphologically dilating its
// alpha-derived grayscale mask with a kernel-shaped structuring element,
// |level|-1 times, then recombining the result against the original
// pixels. A negative level inverts the grayscale mask before dilating,
// producing a hollow/negative-style outline instead of a solid one.
//
// size is the outline thickness in pixels; the kernel side is 2*size+1.
// The returned image is padded on every side by size*iterations to make
// room for the outline's growth.
func ApplyMeta(img *image.RGBA, level int8, kernel arguments.MetaKernel, size uint8) *image.RGBA {
	iterations := int(level)
	if iterations < 0 {
		iterations = -iterations
	}
	iterations--
	if iterations < 0 {
		iterations = 0
	}
	pad := int(size) * iterations

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	origAlpha := func(x, y int) uint8 {
		if x < 0 || x >= w || y < 0 || y >= h {
			return 0
		}
		_, _, _, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
		return uint8(a >> 8)
	}

	pw, ph := w+2*pad, h+2*pad
	canvas := make([][]uint8, ph)
	for y := range canvas {
		canvas[y] = make([]uint8, pw)
		for x := range canvas[y] {
			a := origAlpha(x-pad, y-pad)
			if level < 0 {
				a = 255 - a
			}
			canvas[y][x] = a
		}
	}

	offsets := kernelOffsets(kernel, int(size))
	for i := 0; i < iterations; i++ {
		canvas = dilate(canvas, offsets)
	}

	out := image.NewRGBA(image.Rect(0, 0, pw, ph))
	for y := 0; y < ph; y++ {
		for x := 0; x < pw; x++ {
			ox, oy := x-pad, y-pad
			a := origAlpha(ox, oy)
			nonzero := a != 0
			v := canvas[y][x]
			switch {
			case nonzero && level > 0 && level%2 != 0:
				if ox >= 0 && ox < w && oy >= 0 && oy < h {
					out.Set(x, y, img.At(bounds.Min.X+ox, bounds.Min.Y+oy))
				}
			case nonzero != (level <= 0):
				out.Set(x, y, color.RGBA{})
			default:
				out.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 0xFF})
			}
		}
	}
	return out
}

// kernelOffsets returns the (dx, dy) positions included in the named
// kernel's structuring element, at the given radius, excluding the
// center (and, for Edge/Unit, the excluded corners) in every case.
func kernelOffsets(kernel arguments.MetaKernel, size int) [][2]int {
	var out [][2]int
	for dy := -size; dy <= size; dy++ {
		for dx := -size; dx <= size; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			isCorner := (dx == -size || dx == size) && (dy == -size || dy == size)
			isTopCorner := isCorner && dy == -size
			switch kernel {
			case arguments.MetaKernelEdge:
				if isCorner {
					continue
				}
			case arguments.MetaKernelUnit:
				if isTopCorner {
					continue
				}
			}
			out = append(out, [2]int{dx, dy})
		}
	}
	return out
}

// dilate returns a copy of canvas where every pixel takes the maximum
// value among the positions named by offsets, treating out-of-bounds
// neighbors as zero.
func dilate(canvas [][]uint8, offsets [][2]int) [][]uint8 {
	h := len(canvas)
	if h == 0 {
		return canvas
	}
	w := len(canvas[0])
	out := make([][]uint8, h)
	for y := 0; y < h; y++ {
		out[y] = make([]uint8, w)
		for x := 0; x < w; x++ {
			var best uint8
			for _, off := range offsets {
				nx, ny := x+off[0], y+off[1]
				if nx < 0 || nx >= w || ny < 0 || ny >= h {
					continue
				}
				if canvas[ny][nx] > best {
					best = canvas[ny][nx]
				}
			}
			out[y][x] = best
		}
	}
	return out
}
