package parser

import (
	"fmt"
	"strings"
)

// ParseError is a spanned diagnostic: what the parser expected at Span,
// and optionally what it found instead.
type ParseError struct {
	Span       Span
	Expected   []string
	Unexpected []string
	Cause      error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, "expected %s here", joinExpected(e.Expected))
	}
	if len(e.Unexpected) > 0 {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "did not expect %s here", joinExpected(e.Unexpected))
	}
	if e.Cause != nil {
		if b.Len() > 0 {
			b.WriteString(": ")
		}
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// joinExpected dedupes a list of token descriptions and joins them the
// way a natural-language list reads: a single item alone, two items
// joined by "or", three or more comma-separated with ", or" before the
// last.
func joinExpected(items []string) string {
	seen := make(map[string]struct{}, len(items))
	deduped := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		deduped = append(deduped, it)
	}
	switch len(deduped) {
	case 0:
		return ""
	case 1:
		return deduped[0]
	case 2:
		return deduped[0] + " or " + deduped[1]
	default:
		last := deduped[len(deduped)-1]
		return strings.Join(deduped[:len(deduped)-1], ", ") + ", or " + last
	}
}

// Pretty renders the error as an annotated excerpt of source, pointing a
// caret line at the offending span.
func (e *ParseError) Pretty(source string) string {
	line, col, lineText := locate(source, e.Span.Start)
	width := e.Span.End - e.Span.Start
	if width < 1 {
		width = 1
	}
	var b strings.Builder
	fmt.Fprintf(&b, "--> line %d:%d\n", line, col)
	fmt.Fprintf(&b, "%d | %s\n", line, lineText)
	gutter := len(fmt.Sprintf("%d", line))
	b.WriteString(strings.Repeat(" ", gutter))
	b.WriteString(" | ")
	b.WriteString(strings.Repeat(" ", col-1))
	b.WriteString(strings.Repeat("^", width))
	b.WriteByte('\n')
	b.WriteString(e.Error())
	return b.String()
}

// locate converts a byte offset into a 1-indexed (line, column) pair and
// returns the full text of that line.
func locate(source string, offset int) (line, col int, lineText string) {
	line = 1
	lineStart := 0
	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := strings.IndexByte(source[lineStart:], '\n')
	if lineEnd == -1 {
		lineText = source[lineStart:]
	} else {
		lineText = source[lineStart : lineStart+lineEnd]
	}
	col = offset - lineStart + 1
	return
}
