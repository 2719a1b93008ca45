package database

// Tiling is the autotiling mode a tile's sprite set supports.
type Tiling int8

const (
	// TilingNone means the tile has only one sprite.
	TilingNone Tiling = -1
	// TilingDirectional means the tile has sprites for all four directions.
	TilingDirectional Tiling = 0
	// TilingAutoTiled means the tile connects to neighboring tiles of the
	// same type, and may have special corner-connection sprites.
	TilingAutoTiled Tiling = 1
	// TilingCharacter means the tile has sprites for directions, animation
	// frames within those directions, and a sleep frame per direction.
	TilingCharacter Tiling = 2
	// TilingAnimDir means the tile has sprites for both animation and
	// direction.
	TilingAnimDir Tiling = 3
	// TilingAnimated means the tile has sprites for an animation only.
	TilingAnimated Tiling = 4
)

func (t Tiling) String() string {
	switch t {
	case TilingNone:
		return "None"
	case TilingDirectional:
		return "Directional"
	case TilingAutoTiled:
		return "AutoTiled"
	case TilingCharacter:
		return "Character"
	case TilingAnimDir:
		return "AnimDir"
	case TilingAnimated:
		return "Animated"
	default:
		return "Unknown"
	}
}
