package attrfmt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(f func(Sink)) []Char {
	var out []Char
	f(SinkFunc(func(c Char) { out = append(out, c) }))
	return out
}

func codes(chars []Char) string {
	var sb strings.Builder
	for _, c := range chars {
		sb.WriteByte(c.Code())
	}
	return sb.String()
}

func TestEmitNumberBaseTwo(t *testing.T) {
	t.Parallel()
	chars := collect(func(s Sink) {
		emitNumber(s, 5, 2, 0, Decorate(' ', 0))
	})
	assert.Equal(t, "101", codes(chars))
}

func TestEmitNumberPadOnce(t *testing.T) {
	t.Parallel()
	// Padding happens exactly once, before the most significant digit.
	chars := collect(func(s Sink) {
		emitNumber(s, 123, 10, 6, Decorate('0', 0))
	})
	assert.Equal(t, "000123", codes(chars))
}

func TestEmitNumberPadCarriesAttr(t *testing.T) {
	t.Parallel()
	chars := collect(func(s Sink) {
		emitNumber(s, 7, 10, 3, Decorate('0', FgRed))
	})
	require.Equal(t, "007", codes(chars))
	for _, c := range chars {
		assert.Equal(t, FgRed, c.Attr())
	}
}

func TestArgStreamCoercion(t *testing.T) {
	t.Parallel()
	type myInt uint8

	s := &argStream{vals: []any{int8(-2), uint16(9), myInt(7), 'Z'}}
	assert.Equal(t, int64(-2), s.nextInt(classWide))
	assert.Equal(t, uint64(9), s.nextUint(classNarrow))
	assert.Equal(t, int64(7), s.nextInt(classNarrow)) // named type via reflect
	assert.Equal(t, int64('Z'), s.nextInt(classNarrow))
}

func TestArgStreamExhausted(t *testing.T) {
	t.Parallel()
	s := &argStream{}
	assert.Equal(t, int64(0), s.nextInt(classWide))
	assert.Equal(t, uint64(0), s.nextUint(classWide))
	_, ok := s.nextString()
	assert.False(t, ok)
	assert.Equal(t, uint64(0), s.nextPointer())
}

func TestArgStreamNegativeWraps(t *testing.T) {
	t.Parallel()
	s := &argStream{vals: []any{-1}}
	assert.Equal(t, ^uint64(0), s.nextUint(classWide))
}

func TestDirectiveNumberTieBreak(t *testing.T) {
	t.Parallel()
	d := directive{width: -1, precision: -1}
	d.setNumber(5)
	assert.Equal(t, 5, d.width)
	assert.Equal(t, -1, d.precision)
	d.setNumber(2)
	assert.Equal(t, 5, d.width)
	assert.Equal(t, 2, d.precision)
}

func TestToggleUnknownCharacter(t *testing.T) {
	t.Parallel()
	a := FgRed
	assert.Equal(t, a, a.toggle(true, '?'))
}

func TestToggleBackgroundShift(t *testing.T) {
	t.Parallel()
	assert.Equal(t, BgGreen, Attr(0).toggle(false, 'G'))
	assert.Equal(t, Attr(0), BgGreen.toggle(false, 'g'))
}

func TestTruncatedAttributeDirective(t *testing.T) {
	t.Parallel()
	// %F at the end of the template has no toggle character to consume;
	// the attribute word stays as it was.
	var f Formatter
	chars := collect(func(s Sink) {
		attr := FgRed
		f.format(s, "a%F", &argStream{}, &attr)
	})
	require.Equal(t, "a", codes(chars))
	assert.Equal(t, FgRed, chars[0].Attr())
}

func TestBoundedBufferCountsPastCapacity(t *testing.T) {
	t.Parallel()
	b := &boundedBuffer{dst: make([]byte, 3)}
	for _, ch := range []byte("abcde") {
		b.Emit(Decorate(ch, FgRed))
	}
	b.terminate()
	assert.Equal(t, 5, b.count)
	assert.Equal(t, []byte("ab\x00"), b.dst)
}

func TestSGR(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "\x1b[0m", sgr(0))
	assert.Equal(t, "\x1b[0;31m", sgr(FgRed))
	assert.Equal(t, "\x1b[0;1m", sgr(FgIntense))
	assert.Equal(t, "\x1b[0;34;41m", sgr(FgBlue|BgRed))
}
