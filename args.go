package attrfmt

import (
	"fmt"
	"reflect"
	"unsafe"
)

// lengthClass selects the bit width and signedness used when a numeric
// conversion pulls its operand, mirroring the l modifier: narrow is
// 32-bit, wide and extra-wide are 64-bit.
type lengthClass int

const (
	classNarrow lengthClass = iota
	classWide
	classExtraWide
)

// argStream is the ordered stream of operands a format operation
// consumes. Each conversion pulls exactly the operands its specifier
// requires, in order. An exhausted stream degrades gracefully: numeric
// pulls yield zero and string pulls report absence.
type argStream struct {
	vals []any
	next int
}

func (s *argStream) pull() (any, bool) {
	if s.next >= len(s.vals) {
		return nil, false
	}
	v := s.vals[s.next]
	s.next++
	return v, true
}

// nextInt pulls a signed integer, truncated per the length class.
func (s *argStream) nextInt(class lengthClass) int64 {
	v, ok := s.pull()
	if !ok {
		return 0
	}
	n := coerceInt(v)
	if class == classNarrow {
		n = int64(int32(n))
	}
	return n
}

// nextUint pulls an unsigned integer, truncated per the length class.
// Negative operands wrap, as an unsigned pull of a signed value does.
func (s *argStream) nextUint(class lengthClass) uint64 {
	v, ok := s.pull()
	if !ok {
		return 0
	}
	n := coerceUint(v)
	if class == classNarrow {
		n = uint64(uint32(n))
	}
	return n
}

// nextString pulls a string operand. The second result is false when the
// stream is exhausted or the operand is nil, which %s renders as (null).
func (s *argStream) nextString() (string, bool) {
	v, ok := s.pull()
	if !ok || v == nil {
		return "", false
	}
	switch str := v.(type) {
	case string:
		return str, true
	case []byte:
		return string(str), true
	case *string:
		if str == nil {
			return "", false
		}
		return *str, true
	case error:
		return str.Error(), true
	case fmt.Stringer:
		return str.String(), true
	}
	return fmt.Sprint(v), true
}

// nextPointer pulls a pointer-sized operand for %p.
func (s *argStream) nextPointer() uint64 {
	v, ok := s.pull()
	if !ok || v == nil {
		return 0
	}
	switch p := v.(type) {
	case uintptr:
		return uint64(p)
	case unsafe.Pointer:
		return uint64(uintptr(p))
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Chan, reflect.Map, reflect.Func, reflect.Slice:
		return uint64(rv.Pointer())
	}
	return coerceUint(v)
}

func coerceInt(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case uintptr:
		return int64(n)
	}
	// Named integer types land here.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return int64(rv.Uint())
	}
	return 0
}

func coerceUint(v any) uint64 {
	switch n := v.(type) {
	case int:
		return uint64(n)
	case int8:
		return uint64(n)
	case int16:
		return uint64(n)
	case int32:
		return uint64(n)
	case int64:
		return uint64(n)
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	case uintptr:
		return uint64(n)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	}
	return 0
}
