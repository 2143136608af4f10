// Package attrfmt is a printf-style engine that produces decorated
// characters: each output character carries a persistent 16-bit text
// attribute word alongside its character code. It implements a
// constrained subset of printf directives plus attribute-control
// directives, and delivers output one [Char] at a time to an abstract
// [Sink]. The central entry points are [Format], [FormatBuffer], [Text],
// and [Chars]; bind a custom error table with a [Formatter].
//
// # Directive Grammar
//
//	% [-] [0] [width|*] [. (precision|*)] [#] [l]* (c|s|d|u|o|x|p|e|%)
//	%B<toggle>  %F<toggle>  %C
//
// Conversions:
//
//   - %c — one character (low byte of an integer argument)
//   - %s — string; nil renders as (null); precision truncates; # maps
//     non-printable bytes to '?'
//   - %d, %u — signed/unsigned decimal
//   - %o, %x — unsigned octal/hexadecimal
//   - %p — pointer, rendered as 0x followed by hexadecimal
//   - %e — error code, resolved through the bound [ErrorTable];
//     sign-insensitive, unknown codes render as "error <code>"
//   - %% — literal percent sign
//
// The l modifier widens the pulled argument from 32 to 64 bits. An
// unrecognized escape is not an error: the engine reproduces it
// verbatim in the output.
//
// Two historical conventions are preserved deliberately. The first
// number parsed in an escape becomes the field width unless a literal
// '.' appeared first, so "%5.2s" truncates to two characters but a bare
// digit run is always a width. And a '-' flag on a numeric conversion
// pads with literal '-' characters, since the flag byte doubles as the
// pad character; strings treat it as left-justification.
//
// # Attributes
//
// The attribute word ([Attr]) has independent blue, green, red, and
// intense bits for foreground and background. It starts at zero, is
// changed only by directives, and persists for the remainder of the
// operation, including the nested formatting %e performs:
//
//   - %F<toggle> — foreground: B/G/R/I sets a bit, b/g/r/i clears it
//   - %B<toggle> — background, same toggles
//   - %C — clear the whole word
//
//	attrfmt.Text("%FRalert%C done") // "alert" carries FgRed
//
// # Sinks
//
// A [Sink] receives one decorated character per call and cannot fail.
// [WriterSink] drops attributes and writes plain bytes; [ANSIWriter]
// renders attribute runs as ANSI SGR escapes; [SinkFunc] adapts a
// closure. [Chars] exposes the output as an iterator for callers that
// want the decorated stream itself:
//
//	for c := range attrfmt.Chars("%FG%d%C", 42) {
//		draw(c.Code(), c.Attr())
//	}
//
// # Formatting Into a Buffer
//
// [FormatBuffer] emulates format-into-buffer semantics over a fixed
// capacity: at most len(dst)-1 character codes are stored, a NUL
// terminator always follows, and the returned count is the untruncated
// length:
//
//	buf := make([]byte, 8)
//	n, err := attrfmt.FormatBuffer(buf, "%05d", 42)
//	if n >= len(buf) { /* truncated */ }
//
// # Error Tables
//
// %e resolves its code through an [ErrorTable]. [DefaultErrors] covers
// the canonical codes; build one with [NewErrorTable] or decode one
// with [LoadErrorTable] (YAML) or [LoadErrorTableJSON]:
//
//	t, err := attrfmt.LoadErrorTable(f)
//	fmtr := attrfmt.Formatter{Errors: t}
//	fmtr.Format(sink, "boot failed: %e", code)
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidBuffer] — nil or zero-capacity FormatBuffer destination
//   - [ErrInvalidErrorTable] — undecodable error-table document
package attrfmt
