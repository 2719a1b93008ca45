package arguments

import (
	"github.com/balt-dev/chilly/database"
)

// FlagName enumerates the canonical flag names Chilly supports.
type FlagName int

const (
	FlagBackgroundColor FlagName = iota
	FlagConnectBorders
	FlagUseLetters
	FlagPalette
	FlagNoLoop
	FlagDecoupleWobble
	FlagWobbleFrames
)

func (n FlagName) String() string {
	switch n {
	case FlagBackgroundColor:
		return "BackgroundColor"
	case FlagConnectBorders:
		return "ConnectBorders"
	case FlagUseLetters:
		return "UseLetters"
	case FlagPalette:
		return "Palette"
	case FlagNoLoop:
		return "NoLoop"
	case FlagDecoupleWobble:
		return "DecoupleWobble"
	case FlagWobbleFrames:
		return "WobbleFrames"
	default:
		return "Unknown"
	}
}

// FLAG_DATA is the runtime-accessible registry of every flag Chilly
// supports, for introspection and help text.
var FLAG_DATA = []RuntimeData[FlagName]{
	{FlagBackgroundColor, []string{"b", "background"}, "Sets the background color of this scene.", []string{"Option<Color>"}},
	{FlagConnectBorders, []string{"tb", "tile_borders"}, "Connects any autotiling tiles to the borders of the scene.", nil},
	{FlagUseLetters, []string{"letters", "let"}, "Defaults to using letters for text generation.", nil},
	{FlagPalette, []string{"p", "pal", "palette"}, "Sets the palette to use for paletted colors.", []string{"String"}},
	{FlagNoLoop, []string{"nl", "noloop"}, "Stops the animation from looping.", nil},
	{FlagDecoupleWobble, []string{"am", "anim"}, "Decouples the animation and wobble periods.", []string{"u8", "u8"}},
	{FlagWobbleFrames, []string{"wf", "wobble"}, "Sets which wobble frames (1..=3) are used.", []string{"Vec<u8>"}},
}

// FlagNameFromAlias resolves an alias to its canonical flag name.
func FlagNameFromAlias(alias string) (FlagName, bool) {
	for _, d := range FLAG_DATA {
		for _, a := range d.Aliases {
			if a == alias {
				return d.Name, true
			}
		}
	}
	return 0, false
}

// Flag is a scene-wide option: palette, background, looping, wobble
// cadence. Sealed the same way Variant is.
type Flag interface {
	isFlag()
}

type BackgroundColorFlag struct {
	Color *database.Color
}

func (BackgroundColorFlag) isFlag() {}

type ConnectBordersFlag struct{}

func (ConnectBordersFlag) isFlag() {}

type UseLettersFlag struct{}

func (UseLettersFlag) isFlag() {}

type PaletteFlag struct {
	Name string
}

func (PaletteFlag) isFlag() {}

type NoLoopFlag struct{}

func (NoLoopFlag) isFlag() {}

// DecoupleWobbleFlag sets the scene's animation period and wobble period
// independently instead of deriving one from the other.
type DecoupleWobbleFlag struct {
	AnimPeriod, WobblePeriod uint8
}

func (DecoupleWobbleFlag) isFlag() {}

type WobbleFramesFlag struct {
	Frames []uint8
}

func (WobbleFramesFlag) isFlag() {}

// ParseFlag parses a Flag from its canonical name and argument tokens.
func ParseFlag(name FlagName, tokens []string) (Flag, error) {
	c := NewCursor(tokens)
	wrap := func(index int, err error) error {
		return &ArgumentError{Kind: "flag", Index: index, Cause: err}
	}
	switch name {
	case FlagBackgroundColor:
		v, err := parseOption(c, parseColor)
		if err != nil {
			return nil, wrap(0, err)
		}
		return BackgroundColorFlag{Color: v}, nil
	case FlagConnectBorders:
		return ConnectBordersFlag{}, nil
	case FlagUseLetters:
		return UseLettersFlag{}, nil
	case FlagPalette:
		v, err := parseString(c)
		if err != nil {
			return nil, wrap(0, err)
		}
		return PaletteFlag{Name: v}, nil
	case FlagNoLoop:
		return NoLoopFlag{}, nil
	case FlagDecoupleWobble:
		anim, err := parseUint8(c)
		if err != nil {
			return nil, wrap(0, err)
		}
		wobble, err := parseUint8(c)
		if err != nil {
			return nil, wrap(1, err)
		}
		return DecoupleWobbleFlag{AnimPeriod: anim, WobblePeriod: wobble}, nil
	case FlagWobbleFrames:
		v, err := parseVec(c, parseUint8)
		if err != nil {
			return nil, wrap(0, err)
		}
		return WobbleFramesFlag{Frames: v}, nil
	default:
		return nil, &NonExistentNameError{Kind: "flag", Name: name.String()}
	}
}
