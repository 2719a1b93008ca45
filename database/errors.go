package database

import "fmt"

// LoadError wraps the lower-level causes of an ingest failure: an I/O
// error reading a directory or file, or a TOML decode error.
type LoadError struct {
	Op    string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// ObjectNotFoundError reports a scraped reference to an object whose
// definition never appeared in the scraped source, identified by the
// source path it was expected in.
type ObjectNotFoundError struct {
	Path string
	Name string
}

func (e *ObjectNotFoundError) Error() string {
	return fmt.Sprintf("object %q not found while scraping %s", e.Name, e.Path)
}

// InvalidFieldError reports a scraped or decoded field that could not be
// interpreted in its expected role.
type InvalidFieldError struct {
	// Role names what the field was needed for, e.g. "no color".
	Role string
	// Name is the tile or object the field belongs to.
	Name string
	Value string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("%s for %q (got %q)", e.Role, e.Name, e.Value)
}
