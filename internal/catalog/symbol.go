// Package catalog holds the static table of special characters the keyboard
// presents. The table is immutable reference data: symbols grouped into named
// categories, indexed by codepoint.
package catalog

import (
	"fmt"
	"runtime"

	"golang.org/x/text/unicode/runenames"
)

// Symbol is a single entry of the table: one Unicode character, its display
// name and the category it belongs to.
type Symbol struct {
	Char     rune
	Name     string
	Category string
}

// String returns the character itself.
func (s Symbol) String() string {
	return string(s.Char)
}

// CodeHex returns the codepoint in U+XXXX notation.
func (s Symbol) CodeHex() string {
	return fmt.Sprintf("U+%04X", s.Char)
}

// CodeDec returns the codepoint as a decimal string.
func (s Symbol) CodeDec() string {
	return fmt.Sprintf("%d", s.Char)
}

// HTMLDec returns the decimal HTML entity, e.g. "&#8594;".
func (s Symbol) HTMLDec() string {
	return fmt.Sprintf("&#%d;", s.Char)
}

// HTMLHex returns the hexadecimal HTML entity, e.g. "&#x2192;".
func (s Symbol) HTMLHex() string {
	return fmt.Sprintf("&#x%X;", s.Char)
}

// AltHint returns the Windows Alt-code for the symbol, or a placeholder when
// no code applies. Alt codes only cover the extended ASCII range and only
// mean anything on Windows.
func (s Symbol) AltHint() string {
	return altHint(s.Char, runtime.GOOS)
}

const noAltHint = "—"

func altHint(r rune, goos string) string {
	if goos != "windows" {
		return noAltHint
	}
	if r < 32 || r > 255 {
		return noAltHint
	}
	return fmt.Sprintf("Alt+%d", r)
}

// runeName resolves the Unicode character name for r. Unassigned or unnamed
// runes get a placeholder so the UI never shows an empty name field.
func runeName(r rune) string {
	name := runenames.Name(r)
	if name == "" {
		return "<no name>"
	}
	return name
}
