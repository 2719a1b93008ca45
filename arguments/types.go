// Package arguments implements chilly's variant/flag argument kit: typed
// positional argument parsing plus the declarative registries (VARIANT_DATA,
// FLAG_DATA) used for name/alias resolution and introspection.
package arguments

import "fmt"

// MetaKernel selects the outline shape the Meta variant draws.
type MetaKernel int

const (
	MetaKernelFull MetaKernel = iota
	MetaKernelEdge
	MetaKernelUnit
)

func (k MetaKernel) String() string {
	switch k {
	case MetaKernelFull:
		return "full"
	case MetaKernelEdge:
		return "edge"
	case MetaKernelUnit:
		return "unit"
	default:
		return "unknown"
	}
}

func parseMetaKernel(s string) (MetaKernel, error) {
	switch s {
	case "full":
		return MetaKernelFull, nil
	case "edge":
		return MetaKernelEdge, nil
	case "unit":
		return MetaKernelUnit, nil
	default:
		return 0, fmt.Errorf("must be one of: full, edge, unit")
	}
}

// TilingDirection is one of the eight directions a tile can connect to for
// the Tiling variant.
type TilingDirection int

const (
	DirRight TilingDirection = iota
	DirUpRight
	DirUp
	DirUpLeft
	DirLeft
	DirDownLeft
	DirDown
	DirDownRight
)

func (d TilingDirection) String() string {
	switch d {
	case DirRight:
		return "r"
	case DirUpRight:
		return "ur"
	case DirUp:
		return "u"
	case DirUpLeft:
		return "ul"
	case DirLeft:
		return "l"
	case DirDownLeft:
		return "dl"
	case DirDown:
		return "d"
	case DirDownRight:
		return "dr"
	default:
		return "unknown"
	}
}

func parseTilingDirection(s string) (TilingDirection, error) {
	switch s {
	case "r":
		return DirRight, nil
	case "u":
		return DirUp, nil
	case "l":
		return DirLeft, nil
	case "d":
		return DirDown, nil
	case "ur":
		return DirUpRight, nil
	case "ul":
		return DirUpLeft, nil
	case "dl":
		return DirDownLeft, nil
	case "dr":
		return DirDownRight, nil
	default:
		return 0, fmt.Errorf("must be one of: r, u, l, d, ur, ul, dl, dr")
	}
}
