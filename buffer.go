package attrfmt

// boundedBuffer adapts a fixed-capacity byte slice to the sink contract
// with format-into-buffer semantics: characters past capacity-1 are
// silently discarded, every attempted character is counted, and the
// buffer is NUL-terminated within capacity once the operation completes.
// Attribute bits are dropped; the buffer stores character codes.
type boundedBuffer struct {
	dst   []byte
	pos   int
	count int
}

func (b *boundedBuffer) Emit(c Char) {
	b.count++
	if b.pos < len(b.dst)-1 {
		b.dst[b.pos] = c.Code()
		b.pos++
	}
}

func (b *boundedBuffer) terminate() {
	b.dst[b.pos] = 0
}
