package attrfmt

import "strings"

// Attr is the 16-bit text-attribute word carried by every emitted
// character. The foreground occupies one nibble and the background the
// other; within each nibble the blue, green, red, and intense bits are
// independent. Only these eight bits are ever set.
//
// An Attr is scoped to one format operation: it starts at zero, is
// mutated only by the %F, %B, and %C directives, and persists across the
// remainder of the template, including nested formatting triggered by %e.
type Attr uint16

const (
	FgBlue Attr = 1 << (8 + iota)
	FgGreen
	FgRed
	FgIntense
	BgBlue
	BgGreen
	BgRed
	BgIntense
)

// AttrMask covers every bit an Attr may legally carry. It never overlaps
// the character-code byte of a [Char].
const AttrMask = FgBlue | FgGreen | FgRed | FgIntense | BgBlue | BgGreen | BgRed | BgIntense

// Has reports whether every bit of mask is set.
func (a Attr) Has(mask Attr) bool { return a&mask == mask }

// With returns a with the bits of mask set.
func (a Attr) With(mask Attr) Attr { return (a | mask) & AttrMask }

// Without returns a with the bits of mask cleared.
func (a Attr) Without(mask Attr) Attr { return a &^ mask }

// toggle applies one %F/%B toggle character. Uppercase B/G/R/I sets the
// corresponding bit of the foreground nibble (background nibble when
// foreground is false); the lowercase letter clears it. Any other
// character leaves the word unchanged.
func (a Attr) toggle(foreground bool, ch byte) Attr {
	var bit Attr
	switch ch {
	case 'B', 'b':
		bit = FgBlue
	case 'G', 'g':
		bit = FgGreen
	case 'R', 'r':
		bit = FgRed
	case 'I', 'i':
		bit = FgIntense
	default:
		return a
	}
	if !foreground {
		bit <<= 4
	}
	if ch >= 'a' {
		return a &^ bit
	}
	return a | bit
}

var attrNames = []struct {
	bit  Attr
	name string
}{
	{FgBlue, "FgBlue"},
	{FgGreen, "FgGreen"},
	{FgRed, "FgRed"},
	{FgIntense, "FgIntense"},
	{BgBlue, "BgBlue"},
	{BgGreen, "BgGreen"},
	{BgRed, "BgRed"},
	{BgIntense, "BgIntense"},
}

// String returns a debug form such as "FgRed|BgBlue", or "none".
func (a Attr) String() string {
	if a&AttrMask == 0 {
		return "none"
	}
	var parts []string
	for _, n := range attrNames {
		if a&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
