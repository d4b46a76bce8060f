package cli

import (
	"bytes"
	"io"

	"github.com/fatih/color"

	jsonquery "github.com/Lythenas/json-query"
)

// encoder renders a jsonquery.Document in the tool's canonical,
// whitespace-free form (§4.1 of the specification), coloring each token with
// the palette in color.go the way the teacher's encoder colorizes jq output
// token by token. Coloring is globally toggled through color.NoColor
// (see setMonochrome), which every *color.Color.Fprint call below already
// honors, so the encoder itself carries no color/no-color state.
type encoder struct {
	buf bytes.Buffer
}

func newEncoder() *encoder {
	return &encoder{}
}

func (e *encoder) marshal(doc jsonquery.Document, w io.Writer) error {
	e.encode(doc)
	_, err := w.Write(e.buf.Bytes())
	e.buf.Reset()
	return err
}

func (e *encoder) encode(doc jsonquery.Document) {
	switch doc.Kind() {
	case jsonquery.KindNull:
		nullColor.Fprint(&e.buf, "null")
	case jsonquery.KindBool:
		if doc.Bool() {
			trueColor.Fprint(&e.buf, "true")
		} else {
			falseColor.Fprint(&e.buf, "false")
		}
	case jsonquery.KindNumber:
		numberColor.Fprint(&e.buf, doc.Lexeme())
	case jsonquery.KindString:
		e.string(stringColor, doc.RawString())
	case jsonquery.KindArray:
		e.array(doc.Elements())
	case jsonquery.KindObject:
		e.object(doc.Pairs())
	}
}

// string writes the already-escaped raw content unchanged: escapes in the
// Document are preserved verbatim, never decoded or re-escaped, unlike the
// teacher's encoder, which escapes a decoded Go string on the way out.
func (e *encoder) string(c *color.Color, raw string) {
	c.Fprint(&e.buf, `"`+raw+`"`)
}

func (e *encoder) array(elems []jsonquery.Document) {
	e.buf.WriteByte('[')
	for i, v := range elems {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.encode(v)
	}
	e.buf.WriteByte(']')
}

// object iterates pairs in the order the Document already carries them: the
// Document preserves insertion order itself, so unlike the teacher's
// encoder (which sorts jq's map keys before printing), there is no sorting
// step here.
func (e *encoder) object(pairs []jsonquery.Pair) {
	e.buf.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		e.string(objectKeyColor, p.Key)
		e.buf.WriteByte(':')
		e.encode(p.Value)
	}
	e.buf.WriteByte('}')
}
