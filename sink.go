package attrfmt

import "io"

// Sink is the abstract destination of a format operation. Emit is
// invoked synchronously once per decorated character, in strict output
// order. A sink has no way to signal failure back to the engine; sinks
// that can fail must record the condition themselves.
type Sink interface {
	Emit(Char)
}

// SinkFunc adapts a function to the [Sink] interface.
type SinkFunc func(Char)

// Emit calls f(c).
func (f SinkFunc) Emit(c Char) { f(c) }

// WriterSink returns a Sink that writes character codes to w one byte at
// a time, dropping the attribute bits. Write errors are discarded, per
// the sink contract.
func WriterSink(w io.Writer) Sink {
	return writerSink{w}
}

type writerSink struct {
	w io.Writer
}

func (s writerSink) Emit(c Char) {
	_, _ = s.w.Write([]byte{c.Code()})
}
