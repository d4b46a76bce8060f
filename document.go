// Package jsonquery implements the core of a JSON query tool: a JSON parser,
// a small selector-expression language, and an evaluator that applies a
// parsed selector program to a parsed JSON document.
package jsonquery

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies which variant a Document holds.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Document is the in-memory representation of a JSON value. It is a closed
// six-variant sum: exactly one of the accessor methods below is meaningful
// for a given Document, selected by Kind.
//
// Strings keep their raw escaped content (escapes are never decoded) and
// Numbers keep their exact source lexeme, so that serializing a parsed
// Document reproduces the original text byte for byte modulo whitespace and
// duplicate-key dropping.
type Document struct {
	kind   Kind
	str    string // raw content between the quotes, for KindString
	num    string // exact lexeme, for KindNumber
	bl     bool
	arr    []Document
	obj    *orderedmap.OrderedMap[string, Document]
}

// NewString wraps raw (already-escaped, unquoted) string content.
func NewString(raw string) Document { return Document{kind: KindString, str: raw} }

// NewNumber wraps the exact textual lexeme of a number literal.
func NewNumber(lexeme string) Document { return Document{kind: KindNumber, num: lexeme} }

// NewBool wraps a boolean value.
func NewBool(b bool) Document { return Document{kind: KindBool, bl: b} }

// Null is the sole Null-kind Document.
var Null = Document{kind: KindNull}

// NewArray wraps an ordered sequence of elements. The slice is not copied;
// callers should not mutate it afterwards.
func NewArray(elems []Document) Document {
	if elems == nil {
		elems = []Document{}
	}
	return Document{kind: KindArray, arr: elems}
}

// Pair is a single key/value association used to build an Object.
type Pair struct {
	Key   string
	Value Document
}

// NewObject builds an Object from an ordered sequence of pairs. Duplicate
// keys follow first-wins: the first occurrence of a key is kept and later
// duplicates are silently dropped, per the document model's duplicate-key
// rule.
func NewObject(pairs []Pair) Document {
	m := orderedmap.New[string, Document]()
	for _, p := range pairs {
		if _, exists := m.Get(p.Key); exists {
			continue
		}
		m.Set(p.Key, p.Value)
	}
	return Document{kind: KindObject, obj: m}
}

// Kind reports which variant this Document holds.
func (d Document) Kind() Kind { return d.kind }

// RawString returns the raw (escaped, unquoted) content of a KindString
// Document. It panics if Kind() != KindString.
func (d Document) RawString() string {
	if d.kind != KindString {
		panic("jsonquery: RawString called on non-string Document")
	}
	return d.str
}

// Lexeme returns the exact source text of a KindNumber Document. It panics
// if Kind() != KindNumber.
func (d Document) Lexeme() string {
	if d.kind != KindNumber {
		panic("jsonquery: Lexeme called on non-number Document")
	}
	return d.num
}

// Bool returns the boolean value of a KindBool Document. It panics if
// Kind() != KindBool.
func (d Document) Bool() bool {
	if d.kind != KindBool {
		panic("jsonquery: Bool called on non-boolean Document")
	}
	return d.bl
}

// Len returns the number of elements of a KindArray Document. It panics if
// Kind() != KindArray.
func (d Document) Len() int {
	if d.kind != KindArray {
		panic("jsonquery: Len called on non-array Document")
	}
	return len(d.arr)
}

// At returns the i'th element of a KindArray Document. It panics if
// Kind() != KindArray or the index is out of range; callers that need
// bounds-checked access should use Len first (the evaluator does this to
// produce ApplyError instead of panicking).
func (d Document) At(i int) Document {
	if d.kind != KindArray {
		panic("jsonquery: At called on non-array Document")
	}
	return d.arr[i]
}

// Elements returns the backing slice of a KindArray Document. The slice
// must not be mutated by callers.
func (d Document) Elements() []Document {
	if d.kind != KindArray {
		panic("jsonquery: Elements called on non-array Document")
	}
	return d.arr
}

// Get looks up a key in a KindObject Document. ok is false if the key is
// absent, the "not found" signal required by §7 of the specification. It
// panics if Kind() != KindObject.
func (d Document) Get(key string) (Document, bool) {
	if d.kind != KindObject {
		panic("jsonquery: Get called on non-object Document")
	}
	return d.obj.Get(key)
}

// Keys returns the object's keys in insertion order. It panics if
// Kind() != KindObject.
func (d Document) Keys() []string {
	if d.kind != KindObject {
		panic("jsonquery: Keys called on non-object Document")
	}
	keys := make([]string, 0, d.obj.Len())
	for pair := d.obj.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Pairs returns the object's (key, value) associations in insertion order.
// It panics if Kind() != KindObject.
func (d Document) Pairs() []Pair {
	if d.kind != KindObject {
		panic("jsonquery: Pairs called on non-object Document")
	}
	pairs := make([]Pair, 0, d.obj.Len())
	for pair := d.obj.Oldest(); pair != nil; pair = pair.Next() {
		pairs = append(pairs, Pair{Key: pair.Key, Value: pair.Value})
	}
	return pairs
}

// Equal reports structural equality: Objects compare by key→value
// association regardless of order, Arrays compare elementwise in order, and
// scalar variants compare their stored content verbatim (Numbers are never
// coerced to a machine numeric type, so "1.0" and "1" are distinct).
func (d Document) Equal(o Document) bool {
	if d.kind != o.kind {
		return false
	}
	switch d.kind {
	case KindString:
		return d.str == o.str
	case KindNumber:
		return d.num == o.num
	case KindBool:
		return d.bl == o.bl
	case KindNull:
		return true
	case KindArray:
		if len(d.arr) != len(o.arr) {
			return false
		}
		for i := range d.arr {
			if !d.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if d.obj.Len() != o.obj.Len() {
			return false
		}
		for pair := d.obj.Oldest(); pair != nil; pair = pair.Next() {
			ov, ok := o.obj.Get(pair.Key)
			if !ok || !pair.Value.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Serialize renders the canonical JSON encoding of d: no extra whitespace
// between tokens, keys and array elements in the order described above, and
// no trailing newline. Strings and Numbers are emitted from their stored raw
// content, so serializing a Document produced by ParseJSON reproduces the
// source text modulo whitespace and dropped duplicate keys.
func (d Document) Serialize() string {
	var sb strings.Builder
	d.writeTo(&sb)
	return sb.String()
}

func (d Document) writeTo(sb *strings.Builder) {
	switch d.kind {
	case KindString:
		sb.WriteByte('"')
		sb.WriteString(d.str)
		sb.WriteByte('"')
	case KindNumber:
		sb.WriteString(d.num)
	case KindBool:
		if d.bl {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case KindNull:
		sb.WriteString("null")
	case KindArray:
		sb.WriteByte('[')
		for i, e := range d.arr {
			if i > 0 {
				sb.WriteByte(',')
			}
			e.writeTo(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		i := 0
		for pair := d.obj.Oldest(); pair != nil; pair = pair.Next() {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte('"')
			sb.WriteString(pair.Key)
			sb.WriteString(`":`)
			pair.Value.writeTo(sb)
			i++
		}
		sb.WriteByte('}')
	}
}

func (d Document) String() string { return d.Serialize() }
