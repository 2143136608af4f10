package attrfmt

// directive accumulates the flags and modifiers of one %-escape. It is
// rebuilt for every escape and consumed by exactly one conversion.
type directive struct {
	padc      byte
	width     int // -1 = unspecified
	precision int // -1 = unspecified
	class     lengthClass
	alt       bool
}

// setNumber assigns a parsed field number using the historical
// tie-break: the number becomes the width unless a width is already
// pinned (a literal '.' pins it to 0), in which case it becomes the
// precision. Inline digit runs, '*', and '.' all route through here.
func (d *directive) setNumber(n int) {
	if d.width < 0 {
		d.width = n
	} else {
		d.precision = n
	}
}

// format runs the directive-parser state machine over tmpl, emitting
// decorated characters to s. attr is the operation-scoped attribute
// word, shared with any nested call triggered by %e. The operation
// cannot fail: unrecognized escapes degrade to literal output.
func (f *Formatter) format(s Sink, tmpl string, args *argStream, attr *Attr) {
	i := 0
	for {
		// Literal state: copy bytes through until the next escape.
		for {
			if i >= len(tmpl) {
				return
			}
			ch := tmpl[i]
			i++
			if ch == '%' {
				break
			}
			s.Emit(Decorate(ch, *attr))
		}

		// Directive state.
		d := directive{padc: ' ', width: -1, precision: -1}
		start := i // rewind point for the literal fallback
	escape:
		for {
			if i >= len(tmpl) {
				// Truncated escape: reproduce it verbatim.
				s.Emit(Decorate('%', *attr))
				i = start
				break escape
			}
			ch := tmpl[i]
			i++
			switch {
			case ch == '-':
				// Left-justify request. The byte itself becomes the
				// pad character, which numeric conversions take
				// literally; %s checks for it instead.
				d.padc = '-'

			case ch == '0':
				d.padc = '0'

			case ch >= '1' && ch <= '9':
				n := 0
				for {
					n = n*10 + int(ch-'0')
					if i >= len(tmpl) || tmpl[i] < '0' || tmpl[i] > '9' {
						break
					}
					ch = tmpl[i]
					i++
				}
				d.setNumber(n)

			case ch == '*':
				d.setNumber(int(args.nextInt(classNarrow)))

			case ch == '.':
				// Pin the width so following digits land in precision.
				if d.width < 0 {
					d.width = 0
				}

			case ch == '#':
				d.alt = true

			case ch == 'l':
				if d.class < classExtraWide {
					d.class++
				}

			case ch == 'c':
				s.Emit(Decorate(byte(args.nextInt(classNarrow)), *attr))
				break escape

			case ch == 's':
				emitString(s, &d, args, *attr)
				break escape

			case ch == 'd':
				n := args.nextInt(d.class)
				num := uint64(n)
				if n < 0 {
					s.Emit(Decorate('-', *attr))
					num = uint64(-n)
				}
				emitNumber(s, num, 10, d.width, Decorate(d.padc, *attr))
				break escape

			case ch == 'u':
				emitNumber(s, args.nextUint(d.class), 10, d.width, Decorate(d.padc, *attr))
				break escape

			case ch == 'o':
				emitNumber(s, args.nextUint(d.class), 8, d.width, Decorate(d.padc, *attr))
				break escape

			case ch == 'x':
				emitNumber(s, args.nextUint(d.class), 16, d.width, Decorate(d.padc, *attr))
				break escape

			case ch == 'p':
				s.Emit(Decorate('0', *attr))
				s.Emit(Decorate('x', *attr))
				emitNumber(s, args.nextPointer(), 16, d.width, Decorate(d.padc, *attr))
				break escape

			case ch == 'e':
				code := args.nextInt(classNarrow)
				if code < 0 {
					code = -code
				}
				// The nested call shares the sink and attribute word.
				if msg, ok := f.errorTable().Lookup(int(code)); ok {
					f.format(s, "%s", &argStream{vals: []any{msg}}, attr)
				} else {
					f.format(s, "error %d", &argStream{vals: []any{code}}, attr)
				}
				break escape

			case ch == '%':
				s.Emit(Decorate('%', *attr))
				break escape

			case ch == 'F', ch == 'B':
				if i < len(tmpl) {
					*attr = attr.toggle(ch == 'F', tmpl[i])
					i++
				}
				break escape

			case ch == 'C':
				*attr = 0
				break escape

			default:
				// Unrecognized escape: emit the '%' and rewind so the
				// literal state re-emits everything parsed so far,
				// up to and including ch, as plain text.
				s.Emit(Decorate('%', *attr))
				i = start
				break escape
			}
		}
	}
}

// emitString renders one %s conversion: right-justify padding first
// (unless left-justified), then up to precision characters, then space
// padding for any width left over.
func emitString(s Sink, d *directive, args *argStream, attr Attr) {
	str, ok := args.nextString()
	if !ok {
		str = "(null)"
	}
	width := d.width
	if width > 0 && d.padc != '-' {
		n := len(str)
		if d.precision >= 0 && d.precision < n {
			n = d.precision
		}
		for width -= n; width > 0; width-- {
			s.Emit(Decorate(d.padc, attr))
		}
	}
	prec := d.precision
	for j := 0; j < len(str); j++ {
		if prec == 0 {
			break
		}
		if prec > 0 {
			prec--
		}
		ch := str[j]
		if d.alt && (ch < ' ' || ch > '~') {
			ch = '?'
		}
		s.Emit(Decorate(ch, attr))
		width--
	}
	for ; width > 0; width-- {
		s.Emit(Decorate(' ', attr))
	}
}
