package arguments

import (
	"fmt"
	"strconv"

	"github.com/balt-dev/chilly/database"
)

// Cursor walks a variant or flag's argument tokens one at a time. Each
// primitive parser consumes exactly the tokens it needs; Option and Vec
// combinators wrap a primitive parser to consume zero-or-one or the rest
// of the remaining tokens respectively.
type Cursor struct {
	tokens []string
	pos    int
}

// NewCursor builds a Cursor over tokens.
func NewCursor(tokens []string) *Cursor {
	return &Cursor{tokens: tokens}
}

// Next returns the next token, advancing the cursor, or false if exhausted.
func (c *Cursor) Next() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	tok := c.tokens[c.pos]
	c.pos++
	return tok, true
}

// Remaining reports how many tokens are left.
func (c *Cursor) Remaining() int {
	return len(c.tokens) - c.pos
}

// ArgumentError reports that the argument at Index of a variant or flag of
// kind Kind failed to parse, wrapping the underlying cause.
type ArgumentError struct {
	Kind  string
	Index int
	Cause error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %d of the %s was invalid: %v", e.Index, e.Kind, e.Cause)
}

func (e *ArgumentError) Unwrap() error {
	return e.Cause
}

// NonExistentNameError reports that a name given for a variant or flag of
// kind Kind doesn't correspond to any known canonical name or alias.
type NonExistentNameError struct {
	Kind string
	Name string
}

func (e *NonExistentNameError) Error() string {
	return fmt.Sprintf("the %s %s does not exist", e.Kind, e.Name)
}

func missingArgErr(typeName string) error {
	return fmt.Errorf("argument of type %q not supplied", typeName)
}

func parseUint8(c *Cursor) (uint8, error) {
	tok, ok := c.Next()
	if !ok {
		return 0, missingArgErr("u8")
	}
	n, err := strconv.ParseUint(tok, 10, 8)
	if err != nil {
		return 0, err
	}
	return uint8(n), nil
}

func parseInt8(c *Cursor) (int8, error) {
	tok, ok := c.Next()
	if !ok {
		return 0, missingArgErr("i8")
	}
	n, err := strconv.ParseInt(tok, 10, 8)
	if err != nil {
		return 0, err
	}
	return int8(n), nil
}

func parseIsize(c *Cursor) (int, error) {
	tok, ok := c.Next()
	if !ok {
		return 0, missingArgErr("isize")
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func parseFloat32(c *Cursor) (float32, error) {
	tok, ok := c.Next()
	if !ok {
		return 0, missingArgErr("f32")
	}
	n, err := strconv.ParseFloat(tok, 32)
	if err != nil {
		return 0, err
	}
	return float32(n), nil
}

func parseString(c *Cursor) (string, error) {
	tok, ok := c.Next()
	if !ok {
		return "", missingArgErr("String")
	}
	return tok, nil
}

func parseColor(c *Cursor) (database.Color, error) {
	tok, ok := c.Next()
	if !ok {
		return nil, missingArgErr("Color")
	}
	// A numeric first token starts a palette index: it and the next token
	// are the (x, y) coordinate.
	if x, err := strconv.ParseUint(tok, 10, 8); err == nil {
		yTok, ok := c.Next()
		if !ok {
			return nil, missingArgErr("u8")
		}
		y, err := strconv.ParseUint(yTok, 10, 8)
		if err != nil {
			return nil, err
		}
		return database.Paletted{X: uint8(x), Y: uint8(y)}, nil
	}
	return database.ParseColor(tok)
}

// parseOption runs parse if the cursor has any token remaining, else
// returns nil without erroring; it does not "peek and backtrack" the way
// Option<T> sub-parsing in the source works, so a present but invalid
// value is an error rather than an absent one.
func parseOption[T any](c *Cursor, parse func(*Cursor) (T, error)) (*T, error) {
	if c.Remaining() == 0 {
		return nil, nil
	}
	v, err := parse(c)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// parseVec consumes every remaining token via parse.
func parseVec[T any](c *Cursor, parse func(*Cursor) (T, error)) ([]T, error) {
	out := make([]T, 0, c.Remaining())
	for c.Remaining() > 0 {
		v, err := parse(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
