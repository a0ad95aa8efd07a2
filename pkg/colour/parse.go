package colour

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Errors reported when parsing a textual colour.
var (
	// ErrInvalidHexSyntax means a hex code had the wrong length or non-hex digits.
	ErrInvalidHexSyntax = errors.New("invalid hex syntax")
	// ErrInvalidFuncSyntax means an rgb(...) expression was malformed.
	ErrInvalidFuncSyntax = errors.New("invalid rgb() syntax")
	// ErrOutOfRange means an rgb(...) channel was outside [0, 255].
	ErrOutOfRange = errors.New("channel out of range")
	// ErrUnknownName means a colour name is not in the X11 table.
	ErrUnknownName = errors.New("unknown colour name")
)

// ParseError records the input that failed to parse and why.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse colour %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseHex parses "#rgb", "#rrggbb", "rgb" or "rrggbb". Digits are case
// insensitive.
func ParseHex(s string) (RGB, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) == 3 {
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	}
	if len(digits) != 6 {
		return RGB{}, &ParseError{Input: s, Err: ErrInvalidHexSyntax}
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, &ParseError{Input: s, Err: ErrInvalidHexSyntax}
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// ParseFunc parses the CSS function form "rgb(r, g, b)" with integer
// channels in [0, 255].
func ParseFunc(s string) (RGB, error) {
	body := strings.TrimSpace(s)
	if len(body) < 5 || !strings.EqualFold(body[:4], "rgb(") || !strings.HasSuffix(body, ")") {
		return RGB{}, &ParseError{Input: s, Err: ErrInvalidFuncSyntax}
	}
	parts := strings.Split(body[4:len(body)-1], ",")
	if len(parts) != 3 {
		return RGB{}, &ParseError{Input: s, Err: ErrInvalidFuncSyntax}
	}

	var ch [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
				return RGB{}, &ParseError{Input: s, Err: ErrOutOfRange}
			}
			return RGB{}, &ParseError{Input: s, Err: ErrInvalidFuncSyntax}
		}
		if n < 0 || n > 255 {
			return RGB{}, &ParseError{Input: s, Err: ErrOutOfRange}
		}
		ch[i] = uint8(n)
	}
	return FromTuple(ch), nil
}

// ParseName looks up an X11 colour name, ignoring case.
func ParseName(name string) (RGB, error) {
	c, ok := x11Names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return RGB{}, &ParseError{Input: name, Err: ErrUnknownName}
	}
	return c, nil
}

// Parse accepts any of the forms understood by ParseHex, ParseFunc and
// ParseName.
func Parse(s string) (RGB, error) {
	t := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(t, "#"):
		return ParseHex(t)
	case len(t) >= 4 && strings.EqualFold(t[:4], "rgb("):
		return ParseFunc(t)
	case isHexDigits(t) && (len(t) == 3 || len(t) == 6):
		// Names such as "bed" never collide: no X11 name is all hex digits.
		return ParseHex(t)
	default:
		return ParseName(t)
	}
}

func isHexDigits(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return s != ""
}

// Names returns every known colour name in sorted order.
func Names() []string {
	names := make([]string, 0, len(x11Names))
	for name := range x11Names {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
