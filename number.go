package attrfmt

const digits = "0123456789abcdef"

// emitNumber prints num in the given base (2-16), most significant digit
// first. It recurses on the leading digits before emitting anything, so
// the single padding pass happens at the top of the digit stack, just
// before the first digit. pad carries the pad byte in its low byte and
// the attribute bits above it; every pad character and digit is emitted
// with those attribute bits. Recursion depth equals the digit count,
// bounded by 64 for the widest value in base 2.
func emitNumber(s Sink, num, base uint64, width int, pad Char) {
	if num >= base {
		emitNumber(s, num/base, base, width-1, pad)
	} else {
		for width--; width > 0; width-- {
			s.Emit(pad)
		}
	}
	s.Emit(Decorate(digits[num%base], pad.Attr()))
}
