package fbx

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/philipparndt/gosphere/pkg/mesh"
)

const indentWidth = 4

// encoder writes the nested block syntax of ASCII FBX documents.
// Errors are kept by the underlying bufio.Writer and reported on Flush.
type encoder struct {
	w     *bufio.Writer
	depth int
	buf   []byte
}

func newEncoder(w *bufio.Writer) *encoder {
	return &encoder{w: w, buf: make([]byte, 0, 128)}
}

func (e *encoder) indent() {
	e.buf = append(e.buf, strings.Repeat(" ", e.depth*indentWidth)...)
}

func (e *encoder) flushLine() {
	e.buf = append(e.buf, '\n')
	_, _ = e.w.Write(e.buf)
	e.buf = e.buf[:0]
}

// line writes a single indented line.
func (e *encoder) line(text string) {
	e.indent()
	e.buf = append(e.buf, text...)
	e.flushLine()
}

// blank writes an empty line.
func (e *encoder) blank() {
	e.flushLine()
}

// field writes "key: value".
func (e *encoder) field(key, value string) {
	e.line(key + ": " + value)
}

func (e *encoder) intField(key string, value int) {
	e.field(key, strconv.Itoa(value))
}

// open starts a block "key: value {" and increases the depth.
// An empty value leaves two spaces between the colon and the brace.
func (e *encoder) open(key, value string) {
	e.line(key + ": " + value + " {")
	e.depth++
}

// close ends the innermost block.
func (e *encoder) close() {
	e.depth--
	e.line("}")
}

// property writes one Properties70 entry.
func (e *encoder) property(p property) {
	e.indent()
	e.buf = append(e.buf, `P: `...)
	e.buf = strconv.AppendQuote(e.buf, p.name)
	e.buf = append(e.buf, ", "...)
	e.buf = strconv.AppendQuote(e.buf, p.typ)
	e.buf = append(e.buf, ", "...)
	e.buf = strconv.AppendQuote(e.buf, p.label)
	e.buf = append(e.buf, `, ""`...)
	for _, v := range p.values {
		switch v := v.(type) {
		case string:
			e.buf = append(e.buf, ", "...)
			e.buf = strconv.AppendQuote(e.buf, v)
		case int:
			e.buf = append(e.buf, ',')
			e.buf = strconv.AppendInt(e.buf, int64(v), 10)
		case int64:
			e.buf = append(e.buf, ',')
			e.buf = strconv.AppendInt(e.buf, v, 10)
		case float64:
			e.buf = append(e.buf, ',')
			e.buf = strconv.AppendFloat(e.buf, v, 'g', -1, 64)
		}
	}
	e.flushLine()
}

func (e *encoder) properties(props []property) {
	e.open("Properties70", "")
	for _, p := range props {
		e.property(p)
	}
	e.close()
}

// vectorArray writes a count-prefixed array with one vector per line.
// The prefix is the number of vectors.
func (e *encoder) vectorArray(key string, n int, at func(int) mgl64.Vec3) {
	e.open(key, "*"+strconv.Itoa(n))
	for i := 0; i < n; i++ {
		v := at(i)
		e.indent()
		e.buf = append(e.buf, "a: "...)
		for c := 0; c < 3; c++ {
			if c > 0 {
				e.buf = append(e.buf, ", "...)
			}
			e.buf = strconv.AppendFloat(e.buf, v[c], 'f', 6, 64)
		}
		e.buf = append(e.buf, ',')
		e.flushLine()
	}
	e.close()
}

// triangleArray writes a count-prefixed index array with one triangle per
// line. The prefix is the number of indices.
func (e *encoder) triangleArray(key string, n int, at func(int) mesh.Triangle) {
	e.open(key, "*"+strconv.Itoa(n*3))
	for i := 0; i < n; i++ {
		tri := at(i)
		e.indent()
		e.buf = append(e.buf, "a: "...)
		for c := 0; c < 3; c++ {
			if c > 0 {
				e.buf = append(e.buf, ", "...)
			}
			e.buf = strconv.AppendInt(e.buf, int64(tri[c]), 10)
		}
		e.buf = append(e.buf, ',')
		e.flushLine()
	}
	e.close()
}
