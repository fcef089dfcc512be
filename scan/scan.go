// Package scan provides delimiter-aware text utilities for slicing apart
// Fortran declaration fragments without a full parser: balanced-parenthesis
// extraction, depth-filtered splitting, and separator splitting that respects
// nesting or quoting.
package scan

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrUnbalanced reports input whose delimiters never returned to the
// requested nesting depths.
var ErrUnbalanced = errors.New("unbalanced delimiters")

// ErrBadSeparator reports a separator that is not exactly one character.
var ErrBadSeparator = errors.New("separator must be a single character")

// ExtractBalanced returns the leading portion of text up to, but not
// including, the first identifier-like boundary character (letter,
// underscore, colon, comma, or space) encountered while the parenthesis
// nesting level equals parenDepth and the square-bracket nesting level
// equals bracketDepth. Both counters start at zero, increase on '(' and '['
// and decrease on ')' and ']'. Reaching the end of text with both counters
// at their targets returns all of text; reaching it at any other depth is an
// ErrUnbalanced error. Empty input yields an empty result.
func ExtractBalanced(text string, parenDepth, bracketDepth int) (string, error) {
	if text == "" {
		return "", nil
	}
	var level, blevel int
	for i, r := range text {
		switch r {
		case '(':
			level++
		case ')':
			level--
		case '[':
			blevel++
		case ']':
			blevel--
		default:
			if level == parenDepth && blevel == bracketDepth && isBoundary(r) {
				return text[:i], nil
			}
		}
	}
	if level == parenDepth && blevel == bracketDepth {
		return text, nil
	}
	return "", fmt.Errorf("%w: could not parse parentheses in %q", ErrUnbalanced, text)
}

func isBoundary(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == ':' || r == ',' || r == ' '
}

// SplitByDepth walks text tracking parenthesis nesting and keeps only the
// characters seen at the requested depth, along with the parentheses that
// open or close a scope at that depth. Every time a scope at the target
// depth closes, the segment collected so far is emitted and a fresh one
// begins; a trailing non-empty segment is emitted as well. Content nested
// deeper than depth disappears from the output:
//
//	SplitByDepth("foo(bar(quz) + faz) + baz(buz(cas))", 1)
//
// returns ["(bar() + faz)", "(buz())"].
func SplitByDepth(text string, depth int) []string {
	var (
		segments []string
		current  strings.Builder
		level    int
	)
	for _, r := range text {
		switch r {
		case '(':
			if level == depth || level+1 == depth {
				current.WriteRune(r)
			}
			level++
		case ')':
			if level == depth || level-1 == depth {
				current.WriteRune(r)
			}
			if level == depth {
				segments = append(segments, current.String())
				current.Reset()
			}
			level--
		default:
			if level == depth {
				current.WriteRune(r)
			}
		}
	}
	if current.Len() > 0 {
		segments = append(segments, current.String())
	}
	return segments
}

// SplitOn splits text on sep at the points where both the parenthesis and
// square-bracket nesting levels are zero. Separators inside any nesting are
// left alone, so joining the result with sep reproduces text exactly. sep
// must be a single character.
func SplitOn(sep, text string) ([]string, error) {
	r, err := separatorRune(sep)
	if err != nil {
		return nil, err
	}
	var (
		pieces []string
		level  int
		blevel int
		start  int
	)
	for i, c := range text {
		switch c {
		case '(':
			level++
		case ')':
			level--
		case '[':
			blevel++
		case ']':
			blevel--
		default:
			if c == r && level == 0 && blevel == 0 {
				pieces = append(pieces, text[start:i])
				start = i + utf8.RuneLen(c)
			}
		}
	}
	return append(pieces, text[start:]), nil
}

// SplitOutsideQuotes splits text on sep at the points that fall outside both
// single- and double-quoted runs. A doubled quote character inside a run of
// its own kind is an escaped literal, not a terminator. Joining the result
// with sep reproduces text exactly. sep must be a single character.
func SplitOutsideQuotes(sep, text string) ([]string, error) {
	r, err := separatorRune(sep)
	if err != nil {
		return nil, err
	}
	var (
		pieces   []string
		inSingle bool
		inDouble bool
		start    int
	)
	for i := 0; i < len(text); {
		c, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case c == '"' && !inSingle:
			if !inDouble {
				inDouble = true
			} else if i+size < len(text) && text[i+size] == '"' {
				i += size
			} else {
				inDouble = false
			}
		case c == '\'' && !inDouble:
			if !inSingle {
				inSingle = true
			} else if i+size < len(text) && text[i+size] == '\'' {
				i += size
			} else {
				inSingle = false
			}
		case c == r && !inSingle && !inDouble:
			pieces = append(pieces, text[start:i])
			start = i + size
		}
		i += size
	}
	return append(pieces, text[start:]), nil
}

func separatorRune(sep string) (rune, error) {
	if utf8.RuneCountInString(sep) != 1 {
		return 0, fmt.Errorf("%w: got %q", ErrBadSeparator, sep)
	}
	r, _ := utf8.DecodeRuneInString(sep)
	return r, nil
}
