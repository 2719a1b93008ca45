package renderer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/balt-dev/chilly"
	"github.com/balt-dev/chilly/arguments"
	"github.com/balt-dev/chilly/database"
	"github.com/balt-dev/chilly/solidify"
)

// tileSize is the pixel pitch of one grid cell. Sprites of other sizes
// still anchor to this grid; only Displace moves a sprite off it.
const tileSize = 24

// Render composes scene into a RenderedScene, reading sprite and palette
// images from under assetRoot and reusing cache across lookups.
func Render(scene *solidify.SkeletalScene, assetRoot string, cache ImageCache) (*RenderedScene, error) {
	flags := make(map[arguments.FlagName]arguments.Flag, len(scene.Flags))
	for k, v := range scene.Flags {
		flags[k] = v
	}

	loops := true
	if _, ok := flags[arguments.FlagNoLoop]; ok {
		loops = false
		delete(flags, arguments.FlagNoLoop)
	}

	paletteName := "default"
	if f, ok := flags[arguments.FlagPalette]; ok {
		paletteName = f.(arguments.PaletteFlag).Name
		delete(flags, arguments.FlagPalette)
	}
	paletteImg, err := resolvePalette(assetRoot, paletteName, cache)
	if err != nil {
		return nil, err
	}

	wobbleFrames := []uint8{1, 2, 3}
	if f, ok := flags[arguments.FlagWobbleFrames]; ok {
		wf := f.(arguments.WobbleFramesFlag).Frames
		if len(wf) == 0 {
			return nil, &InvalidFlagError{Flag: arguments.FlagWobbleFrames, Reason: "must name at least one wobble index"}
		}
		for _, idx := range wf {
			if idx < 1 || idx > 3 {
				return nil, &InvalidFlagError{Flag: arguments.FlagWobbleFrames, Reason: "wobble indices must be in 1..=3"}
			}
		}
		wobbleFrames = wf
		delete(flags, arguments.FlagWobbleFrames)
	}

	wobblePeriod := uint8(len(wobbleFrames))
	if f, ok := flags[arguments.FlagDecoupleWobble]; ok {
		dw := f.(arguments.DecoupleWobbleFlag)
		if dw.WobblePeriod == 0 {
			return nil, &InvalidFlagError{Flag: arguments.FlagDecoupleWobble, Reason: "wobble period must be non-zero"}
		}
		wobblePeriod = dw.WobblePeriod
		delete(flags, arguments.FlagDecoupleWobble)
	}

	background := color.RGBA{}
	if f, ok := flags[arguments.FlagBackgroundColor]; ok {
		bg := f.(arguments.BackgroundColorFlag)
		c := database.Color(database.Paletted{X: 0, Y: 0})
		if bg.Color != nil {
			c = *bg.Color
		}
		resolved, err := database.ResolveRGBA(c, paletteImg)
		if err != nil {
			return nil, err
		}
		background = resolved
		delete(flags, arguments.FlagBackgroundColor)
	}

	// placedSprite carries the originating cell position alongside its
	// Sprite, so frames can be sorted by (z, y, x) before z_order is
	// assigned and the position is discarded from the public result.
	type placedSprite struct {
		pos    chilly.Position
		sprite Sprite
	}
	placedByT := make(map[int][]placedSprite)
	maxT := -1

	for _, pos := range scene.Map.Positions() {
		tile := scene.Map.Cells[pos]

		img, err := spriteFor(tile, pos, wobbleFrames, wobblePeriod, assetRoot, cache)
		if err != nil {
			return nil, err
		}

		img, dx, dy, err := applyResidualVariants(img, tile.Variants, paletteImg)
		if err != nil {
			return nil, err
		}

		placedByT[pos.T] = append(placedByT[pos.T], placedSprite{
			pos: pos,
			sprite: Sprite{
				Size:  1,
				X:     pos.X*tileSize + dx,
				Y:     pos.Y*tileSize + dy,
				Image: img,
			},
		})
		if pos.T > maxT {
			maxT = pos.T
		}
	}

	frames := make([]SceneFrame, 0, maxT+1)
	for t := 0; t <= maxT; t++ {
		placed := placedByT[t]
		sort.Slice(placed, func(i, j int) bool {
			return placed[i].pos.Less(placed[j].pos)
		})
		sprites := make([]Sprite, len(placed))
		for i, p := range placed {
			p.sprite.ZOrder = i
			sprites[i] = p.sprite
		}
		frames = append(frames, SceneFrame{Length: int(wobblePeriod), Sprites: sprites})
	}

	return &RenderedScene{
		Background: background,
		Width:      scene.Map.Width * tileSize,
		Height:     scene.Map.Height * tileSize,
		Loops:      loops,
		Frames:     frames,
		Flags:      flags,
	}, nil
}

// resolvePalette finds the first PNG named name anywhere directly under a
// world directory in assetRoot.
func resolvePalette(assetRoot, name string, cache ImageCache) (*image.RGBA, error) {
	pattern := filepath.Join(assetRoot, "*", name+".png")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, &NoPaletteError{Name: name}
	}
	return openCached(matches[0], cache)
}

// spriteFor resolves the image for one tile at pos, retrying the
// fallback animation frame on a missing primary sprite and caching the
// fallback image under the primary path.
func spriteFor(tile solidify.TileSkeleton, pos chilly.Position, wobbleFrames []uint8, wobblePeriod uint8, assetRoot string, cache ImageCache) (*image.RGBA, error) {
	existing, ok := tile.Data.(solidify.Existing)
	if !ok {
		gen := tile.Data.(solidify.Generative)
		return nil, &SpriteNoTileError{Span: tile.Span, Text: gen.Name}
	}

	wobbleIdx := (pos.T / int(wobblePeriod)) % len(wobbleFrames)
	wobble := wobbleFrames[wobbleIdx]

	spriteDir := filepath.Join(assetRoot, existing.Data.Directory, "sprites")
	primaryPath := filepath.Join(spriteDir, fmt.Sprintf("%s_%d_%d.png", existing.Data.Sprite, tile.AnimationFrame[0], wobble))

	img, err := openCached(primaryPath, cache)
	if err == nil {
		return img, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, &SpriteFailedOpenError{Span: tile.Span, Cause: err}
	}

	fallbackPath := filepath.Join(spriteDir, fmt.Sprintf("%s_%d_%d.png", existing.Data.Sprite, tile.AnimationFrame[1], wobble))
	fallbackImg, err := openCached(fallbackPath, cache)
	if err != nil {
		return nil, &SpriteFailedOpenError{Span: tile.Span, Cause: err}
	}
	cache.Put(primaryPath, fallbackImg)
	return fallbackImg, nil
}

// openCached reads and decodes the PNG at path, preferring a cache hit.
func openCached(path string, cache ImageCache) (*image.RGBA, error) {
	if cache != nil {
		if img, ok := cache.Get(path); ok {
			return img, nil
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	rgba := toRGBA(decoded)
	if cache != nil {
		cache.Put(path, rgba)
	}
	return rgba, nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

// applyResidualVariants applies every image-space variant left after
// solidification, returning the transformed image and a cumulative pixel
// displacement.
func applyResidualVariants(img *image.RGBA, variants []arguments.Variant, palette image.Image) (*image.RGBA, int, int, error) {
	dx, dy := 0, 0
	out := img
	for _, v := range variants {
		switch vv := v.(type) {
		case arguments.NoopVariant:
			// nothing to do
		case arguments.MetaVariant:
			level := int8(1)
			if vv.Count != nil {
				level = *vv.Count
			}
			kernel := arguments.MetaKernelFull
			if vv.Kernel != nil {
				kernel = *vv.Kernel
			}
			size := uint8(1)
			if vv.Size != nil {
				size = *vv.Size
			}
			if size == 0 {
				return nil, 0, 0, &InvalidVariantError{Reason: "meta size must be non-zero"}
			}
			out = ApplyMeta(out, level, kernel, size)
		case arguments.ColorVariant:
			rgba, err := database.ResolveRGBA(vv.Color, palette)
			if err != nil {
				return nil, 0, 0, err
			}
			out = multiplyColor(out, rgba)
		case arguments.DisplaceVariant:
			dx += vv.DX
			dy += vv.DY
		}
	}
	return out, dx, dy, nil
}

// multiplyColor returns a copy of img with every pixel channel scaled by
// the matching channel of c, out of 255.
func multiplyColor(img *image.RGBA, c color.RGBA) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.RGBAAt(x, y).RGBA()
			out.SetRGBA(x, y, color.RGBA{
				R: uint8(uint32(r>>8) * uint32(c.R) / 255),
				G: uint8(uint32(g>>8) * uint32(c.G) / 255),
				B: uint8(uint32(b>>8) * uint32(c.B) / 255),
				A: uint8(uint32(a>>8) * uint32(c.A) / 255),
			})
		}
	}
	return out
}
