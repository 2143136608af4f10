package attrfmt

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidBuffer     = errors.New("invalid buffer")
	ErrInvalidErrorTable = errors.New("invalid error table")
)

// Formatter binds an error table to the formatting entry points. The
// zero value is ready to use and resolves %e against [DefaultErrors].
// A Formatter holds no per-operation state; concurrent operations on
// one Formatter are independent.
type Formatter struct {
	// Errors resolves %e codes. Nil selects DefaultErrors.
	Errors *ErrorTable
}

func (f *Formatter) errorTable() *ErrorTable {
	if f.Errors != nil {
		return f.Errors
	}
	return DefaultErrors
}

// Format interprets template against args and emits the result to s,
// one decorated character at a time. It never fails: unsupported
// escapes are reproduced as literal text and exhausted arguments
// degrade to zero values.
func (f *Formatter) Format(s Sink, template string, args ...any) {
	attr := Attr(0)
	f.format(s, template, &argStream{vals: args}, &attr)
}

// FormatBuffer formats into dst, writing at most len(dst)-1 character
// codes plus a NUL terminator. It returns the total number of
// characters the template produced, not clipped to capacity, so callers
// detect truncation by comparing the count against len(dst). It fails
// with [ErrInvalidBuffer] if dst is nil or has no room for the
// terminator.
func (f *Formatter) FormatBuffer(dst []byte, template string, args ...any) (int, error) {
	if dst == nil || len(dst) < 1 {
		return 0, fmt.Errorf("%w: need a destination with capacity for the terminator", ErrInvalidBuffer)
	}
	b := &boundedBuffer{dst: dst}
	attr := Attr(0)
	f.format(b, template, &argStream{vals: args}, &attr)
	b.terminate()
	return b.count, nil
}

// Text formats into a new string, dropping attribute bits.
func (f *Formatter) Text(template string, args ...any) string {
	var sb strings.Builder
	f.Format(SinkFunc(func(c Char) { sb.WriteByte(c.Code()) }), template, args...)
	return sb.String()
}

// Chars returns the formatted output as a sequence of decorated
// characters, in emission order.
func (f *Formatter) Chars(template string, args ...any) iter.Seq[Char] {
	return func(yield func(Char) bool) {
		stopped := false
		f.Format(SinkFunc(func(c Char) {
			if !stopped && !yield(c) {
				stopped = true
			}
		}), template, args...)
	}
}

var defaultFormatter Formatter

// Format formats to s using [DefaultErrors]. See [Formatter.Format].
func Format(s Sink, template string, args ...any) {
	defaultFormatter.Format(s, template, args...)
}

// FormatBuffer formats into dst using [DefaultErrors]. See
// [Formatter.FormatBuffer].
func FormatBuffer(dst []byte, template string, args ...any) (int, error) {
	return defaultFormatter.FormatBuffer(dst, template, args...)
}

// Text formats into a new string using [DefaultErrors]. See
// [Formatter.Text].
func Text(template string, args ...any) string {
	return defaultFormatter.Text(template, args...)
}

// Chars returns the decorated-character sequence using [DefaultErrors].
// See [Formatter.Chars].
func Chars(template string, args ...any) iter.Seq[Char] {
	return defaultFormatter.Chars(template, args...)
}
