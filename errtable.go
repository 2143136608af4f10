package attrfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Canonical codes covered by [DefaultErrors].
const (
	CodeUnspecified = iota + 1
	CodeBadEnv
	CodeInvalidParam
	CodeNoMem
	CodeNoFreeEnv
	CodeFault
)

// ErrorTable is a fixed mapping from small non-negative codes to
// human-readable messages, consumed by the %e conversion. A table is
// immutable after construction and safe for unsynchronized concurrent
// reads.
type ErrorTable struct {
	messages []string
}

// DefaultErrors is the table used when a [Formatter] has none bound.
var DefaultErrors = NewErrorTable(map[int]string{
	CodeUnspecified:  "unspecified error",
	CodeBadEnv:       "bad environment",
	CodeInvalidParam: "invalid parameter",
	CodeNoMem:        "out of memory",
	CodeNoFreeEnv:    "out of environments",
	CodeFault:        "segmentation fault",
})

// NewErrorTable builds a table from a code-to-message mapping. Negative
// codes and empty messages are ignored; codes left unmapped are absent
// and %e falls back to its generated placeholder for them.
func NewErrorTable(messages map[int]string) *ErrorTable {
	bound := -1
	for code, msg := range messages {
		if code >= 0 && msg != "" && code > bound {
			bound = code
		}
	}
	t := &ErrorTable{messages: make([]string, bound+1)}
	for code, msg := range messages {
		if code >= 0 && msg != "" {
			t.messages[code] = msg
		}
	}
	return t
}

// Lookup returns the message mapped to code. It reports false for codes
// outside the table's range or mapped to no entry.
func (t *ErrorTable) Lookup(code int) (string, bool) {
	if t == nil || code < 0 || code >= len(t.messages) || t.messages[code] == "" {
		return "", false
	}
	return t.messages[code], true
}

// Len returns the table's range bound: codes in [0, Len) may have
// entries.
func (t *ErrorTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.messages)
}

// ErrorEntry is one mapped code of an [ErrorTable].
type ErrorEntry struct {
	Code    int
	Message string
}

// Entries returns the mapped codes in ascending order.
func (t *ErrorTable) Entries() []ErrorEntry {
	if t == nil {
		return nil
	}
	var out []ErrorEntry
	for code, msg := range t.messages {
		if msg != "" {
			out = append(out, ErrorEntry{Code: code, Message: msg})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// LoadErrorTable decodes a YAML document mapping codes to messages:
//
//	1: unspecified error
//	4: out of memory
func LoadErrorTable(r io.Reader) (*ErrorTable, error) {
	var messages map[int]string
	if err := yaml.NewDecoder(r).Decode(&messages); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidErrorTable, err)
	}
	return NewErrorTable(messages), nil
}

// LoadErrorTableJSON decodes a JSON object mapping codes to messages.
func LoadErrorTableJSON(r io.Reader) (*ErrorTable, error) {
	var messages map[int]string
	if err := json.NewDecoder(r).Decode(&messages); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidErrorTable, err)
	}
	return NewErrorTable(messages), nil
}
