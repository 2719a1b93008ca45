package arguments

import (
	"github.com/balt-dev/chilly/database"
)

// VariantName enumerates the canonical variant names Chilly supports.
type VariantName int

const (
	VariantMeta VariantName = iota
	VariantNoop
	VariantAnimationFrame
	VariantLeft
	VariantUp
	VariantDown
	VariantRight
	VariantSleep
	VariantAnimation
	VariantTiling
	VariantColor
	VariantDisplace
)

func (n VariantName) String() string {
	switch n {
	case VariantMeta:
		return "Meta"
	case VariantNoop:
		return "Noop"
	case VariantAnimationFrame:
		return "AnimationFrame"
	case VariantLeft:
		return "Left"
	case VariantUp:
		return "Up"
	case VariantDown:
		return "Down"
	case VariantRight:
		return "Right"
	case VariantSleep:
		return "Sleep"
	case VariantAnimation:
		return "Animation"
	case VariantTiling:
		return "Tiling"
	case VariantColor:
		return "Color"
	case VariantDisplace:
		return "Displace"
	default:
		return "Unknown"
	}
}

// VARIANT_DATA is the runtime-accessible registry of every variant Chilly
// supports, for introspection and help text.
var VARIANT_DATA = []RuntimeData[VariantName]{
	{VariantMeta, []string{"meta", "m"}, "Adds an outline to a tile's sprite.", []string{"Option<i8>", "Option<MetaKernel>", "Option<u8>"}},
	{VariantNoop, []string{""}, "Does nothing. Useful for resetting variants on animations.", nil},
	{VariantAnimationFrame, []string{"frame", "f"}, "Sets the animation frame of this tile.", []string{"u8"}},
	{VariantLeft, []string{"left", "l"}, "Makes the tile face left if it supports directions.", nil},
	{VariantUp, []string{"up", "u"}, "Makes the tile face up if it supports directions.", nil},
	{VariantDown, []string{"down", "d"}, "Makes the tile face down if it supports directions.", nil},
	{VariantRight, []string{"right", "r"}, "Makes the tile face right if it supports directions.", nil},
	{VariantSleep, []string{"sleep", "s", "eepy"}, "Puts the tile to sleep if it's a character tile.", nil},
	{VariantAnimation, []string{"anim", "a"}, "Sets the tile's animation cycle.", []string{"u8"}},
	{VariantTiling, []string{"t", "tiling"}, "Sets the tiling directions of this tile.", []string{"Vec<TilingDirection>"}},
	{VariantColor, []string{"c", "color"}, "Sets the color of the tile. May be a palette index, a color name, or an RGB color.", []string{"Color"}},
	{VariantDisplace, []string{"disp", "displace"}, "Displaces a tile's position by a specified amount of pixels.", []string{"isize", "isize"}},
}

// VariantNameFromAlias resolves an alias to its canonical variant name.
func VariantNameFromAlias(alias string) (VariantName, bool) {
	for _, d := range VARIANT_DATA {
		for _, a := range d.Aliases {
			if a == alias {
				return d.Name, true
			}
		}
	}
	return 0, false
}

// Variant is a per-tile transform: direction, animation frame, color,
// outline, and so on. It's a sealed interface (one concrete type per
// case) rather than a tagged struct, since the cases carry disjoint
// argument shapes.
type Variant interface {
	isVariant()
}

// MetaVariant adds an outline to a tile's sprite. Count defaults to 1,
// Kernel to MetaKernelFull, and Size to 1 when absent; a negative Count
// inverts the sprite's alpha mask before the outline is grown, and the
// original sprite pixels are then not drawn.
type MetaVariant struct {
	Count  *int8
	Kernel *MetaKernel
	Size   *uint8
}

func (MetaVariant) isVariant() {}

// NoopVariant does nothing; used to reset an inherited variant list on an
// animation frame without specifying anything new.
type NoopVariant struct{}

func (NoopVariant) isVariant() {}

type AnimationFrameVariant struct {
	Frame uint8
}

func (AnimationFrameVariant) isVariant() {}

type LeftVariant struct{}

func (LeftVariant) isVariant() {}

type UpVariant struct{}

func (UpVariant) isVariant() {}

type DownVariant struct{}

func (DownVariant) isVariant() {}

type RightVariant struct{}

func (RightVariant) isVariant() {}

type SleepVariant struct{}

func (SleepVariant) isVariant() {}

type AnimationVariant struct {
	Cycle uint8
}

func (AnimationVariant) isVariant() {}

type TilingVariant struct {
	Directions []TilingDirection
}

func (TilingVariant) isVariant() {}

type ColorVariant struct {
	Color database.Color
}

func (ColorVariant) isVariant() {}

// DisplaceVariant shifts a tile's drawn position by (DX, DY) pixels.
type DisplaceVariant struct {
	DX, DY int
}

func (DisplaceVariant) isVariant() {}

// ParseVariant parses a Variant from its canonical name and argument
// tokens.
func ParseVariant(name VariantName, tokens []string) (Variant, error) {
	c := NewCursor(tokens)
	wrap := func(index int, err error) error {
		return &ArgumentError{Kind: "variant", Index: index, Cause: err}
	}
	switch name {
	case VariantMeta:
		count, err := parseOption(c, parseInt8)
		if err != nil {
			return nil, wrap(0, err)
		}
		kernel, err := parseOption(c, func(c *Cursor) (MetaKernel, error) {
			tok, _ := c.Next()
			return parseMetaKernel(tok)
		})
		if err != nil {
			return nil, wrap(1, err)
		}
		size, err := parseOption(c, parseUint8)
		if err != nil {
			return nil, wrap(2, err)
		}
		return MetaVariant{Count: count, Kernel: kernel, Size: size}, nil
	case VariantNoop:
		return NoopVariant{}, nil
	case VariantAnimationFrame:
		v, err := parseUint8(c)
		if err != nil {
			return nil, wrap(0, err)
		}
		return AnimationFrameVariant{Frame: v}, nil
	case VariantLeft:
		return LeftVariant{}, nil
	case VariantUp:
		return UpVariant{}, nil
	case VariantDown:
		return DownVariant{}, nil
	case VariantRight:
		return RightVariant{}, nil
	case VariantSleep:
		return SleepVariant{}, nil
	case VariantAnimation:
		v, err := parseUint8(c)
		if err != nil {
			return nil, wrap(0, err)
		}
		return AnimationVariant{Cycle: v}, nil
	case VariantTiling:
		v, err := parseVec(c, func(c *Cursor) (TilingDirection, error) {
			tok, _ := c.Next()
			return parseTilingDirection(tok)
		})
		if err != nil {
			return nil, wrap(0, err)
		}
		return TilingVariant{Directions: v}, nil
	case VariantColor:
		v, err := parseColor(c)
		if err != nil {
			return nil, wrap(0, err)
		}
		return ColorVariant{Color: v}, nil
	case VariantDisplace:
		x, err := parseIsize(c)
		if err != nil {
			return nil, wrap(0, err)
		}
		y, err := parseIsize(c)
		if err != nil {
			return nil, wrap(1, err)
		}
		return DisplaceVariant{DX: x, DY: y}, nil
	default:
		return nil, &NonExistentNameError{Kind: "variant", Name: name.String()}
	}
}

// CollapseVariantAlias collapses a bare color literal ("red", "#ff00ff")
// directly into a ColorVariant, bypassing name dispatch. This is how a
// tile's color can be set without the "c/" or "color/" prefix.
func CollapseVariantAlias(alias string) (Variant, bool) {
	if col, err := database.ParseColor(alias); err == nil {
		return ColorVariant{Color: col}, true
	}
	return nil, false
}
