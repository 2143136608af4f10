package attrfmt

// Char is a decorated character, the unit a [Sink] receives: the
// character code in the low byte and the attribute word in the high
// byte. The two never overlap.
type Char uint16

// Decorate combines a character code with an attribute word.
func Decorate(code byte, attr Attr) Char {
	return Char(code) | Char(attr&AttrMask)
}

// Code returns the character code.
func (c Char) Code() byte { return byte(c) }

// Attr returns the attribute bits.
func (c Char) Attr() Attr { return Attr(c) & AttrMask }
