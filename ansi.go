package attrfmt

import (
	"io"
	"strconv"
	"strings"
)

// ANSIWriter is a [Sink] that renders decorated characters to w as text
// with ANSI SGR escape sequences. Escapes are emitted only when the
// attribute bits change between characters, so runs of identically
// decorated text cost one escape. Foreground and background nibbles map
// to the 30-37/40-47 color range, or the bright 90-97/100-107 range
// when the intense bit is set; an intense bit with no color bits maps
// to bold. Write errors are recorded and returned by Close.
type ANSIWriter struct {
	w    io.Writer
	cur  Attr
	open bool
	err  error
}

// NewANSIWriter returns an ANSIWriter rendering to w.
func NewANSIWriter(w io.Writer) *ANSIWriter {
	return &ANSIWriter{w: w}
}

// Emit implements [Sink].
func (a *ANSIWriter) Emit(c Char) {
	if attr := c.Attr(); attr != a.cur {
		a.write(sgr(attr))
		a.cur = attr
		a.open = attr != 0
	}
	a.write(string(c.Code()))
}

// Close resets the terminal attributes if any are in effect and returns
// the first write error encountered.
func (a *ANSIWriter) Close() error {
	if a.open {
		a.write(sgr(0))
		a.cur = 0
		a.open = false
	}
	return a.err
}

func (a *ANSIWriter) write(s string) {
	if a.err != nil {
		return
	}
	_, a.err = io.WriteString(a.w, s)
}

// sgr builds the escape selecting attr. Nibbles with no color bits keep
// the terminal's default color.
func sgr(attr Attr) string {
	if attr == 0 {
		return "\x1b[0m"
	}
	params := []string{"0"}
	if n, ok := colorIndex(attr, FgRed, FgGreen, FgBlue); ok {
		base := 30
		if attr.Has(FgIntense) {
			base = 90
		}
		params = append(params, strconv.Itoa(base+n))
	} else if attr.Has(FgIntense) {
		params = append(params, "1")
	}
	if n, ok := colorIndex(attr, BgRed, BgGreen, BgBlue); ok {
		base := 40
		if attr.Has(BgIntense) {
			base = 100
		}
		params = append(params, strconv.Itoa(base+n))
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}

// colorIndex folds one nibble's color bits into the 0-7 ANSI color
// number (red=1, green=2, blue=4).
func colorIndex(attr, red, green, blue Attr) (int, bool) {
	n := 0
	if attr.Has(red) {
		n |= 1
	}
	if attr.Has(green) {
		n |= 2
	}
	if attr.Has(blue) {
		n |= 4
	}
	return n, n != 0
}
