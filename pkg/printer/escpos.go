package printer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Font size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // Double width + double height
	FontWide   = 0x10 // Double width only
	FontTall   = 0x01 // Double height only
)

// Paper widths in characters
const (
	Width58mm = 32
	Width80mm = 48
)

// Document builds a receipt either as an ESC/POS byte stream or, in plain
// mode, as text with the same layout and no control codes.
type Document struct {
	buf   bytes.Buffer
	width int
	plain bool
	align int
	wide  bool
}

// NewDocument creates a new ESC/POS document with the given character width.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = Width58mm
	}
	d := &Document{width: charWidth}
	d.Init()
	return d
}

// NewTextDocument creates a document that renders plain text, for sharing
// a receipt outside the printer.
func NewTextDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = Width58mm
	}
	return &Document{width: charWidth, plain: true}
}

// Width returns the line width in characters
func (d *Document) Width() int {
	return d.width
}

func (d *Document) command(b ...byte) {
	if !d.plain {
		d.buf.Write(b)
	}
}

// Init sends the ESC @ (initialize printer) command.
func (d *Document) Init() *Document {
	d.command(ESC, '@')
	d.align = AlignLeft
	d.wide = false
	return d
}

// LineFeed sends a line feed.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	return d
}

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (d *Document) SetAlign(align int) *Document {
	d.align = align
	d.command(ESC, 'a', byte(align))
	return d
}

// SetBold enables or disables bold text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.command(ESC, 'E', b)
	return d
}

// SetFontSize sets the character size. Use FontNormal, FontDouble, FontWide, or FontTall.
func (d *Document) SetFontSize(size byte) *Document {
	d.wide = size&0x10 != 0
	d.command(GS, '!', size)
	return d
}

// lineWidth is the number of characters that fit on a line at the current font size
func (d *Document) lineWidth() int {
	if d.wide {
		return d.width / 2
	}
	return d.width
}

// Text writes s followed by a line feed, wrapping at the line width.
// In plain mode centre and right alignment are emulated with spaces.
func (d *Document) Text(s string) *Document {
	for _, line := range wrap(s, d.lineWidth()) {
		if d.plain {
			line = d.pad(line)
		}
		d.buf.WriteString(line)
		d.buf.WriteByte(LF)
	}
	return d
}

// TextF writes a formatted line of text followed by a line feed.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

func (d *Document) pad(line string) string {
	gap := d.lineWidth() - runeLen(line)
	if gap <= 0 {
		return line
	}
	switch d.align {
	case AlignCenter:
		return strings.Repeat(" ", gap/2) + line
	case AlignRight:
		return strings.Repeat(" ", gap) + line
	}
	return line
}

// Separator prints a full-width separator line (e.g. "--------------------------------").
func (d *Document) Separator(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// KeyValue prints a left-aligned key and right-aligned value on the same line.
// Example: "Subtotal           100.00"
func (d *Document) KeyValue(key, value string) *Document {
	d.columns(key, value)
	return d
}

// ItemLine prints "qty x name" with the line total right-aligned. Names too
// long for the line continue on the following lines.
func (d *Document) ItemLine(qty int, name, total string) *Document {
	prefix := fmt.Sprintf("%dx ", qty)
	room := d.width - runeLen(prefix) - runeLen(total) - 1
	if room < 1 {
		room = 1
	}
	lines := wrap(name, room)
	d.columns(prefix+lines[0], total)
	indent := strings.Repeat(" ", runeLen(prefix))
	for _, rest := range lines[1:] {
		d.buf.WriteString(indent + rest)
		d.buf.WriteByte(LF)
	}
	return d
}

func (d *Document) columns(left, right string) {
	spaces := d.width - runeLen(left) - runeLen(right)
	if spaces < 1 {
		spaces = 1
	}
	d.buf.WriteString(left)
	d.buf.WriteString(strings.Repeat(" ", spaces))
	d.buf.WriteString(right)
	d.buf.WriteByte(LF)
}

// Barcode prints data as a CODE128 barcode with its text underneath.
// Plain documents print the text between asterisks instead.
func (d *Document) Barcode(data string) *Document {
	if d.plain {
		return d.Text("*" + data + "*")
	}
	payload := append([]byte("{B"), data...)
	d.command(GS, 'H', 2)  // human readable text below
	d.command(GS, 'h', 80) // height in dots
	d.command(GS, 'k', 73, byte(len(payload)))
	d.buf.Write(payload)
	d.buf.WriteByte(LF)
	return d
}

// Cut sends the paper cut command (full cut).
func (d *Document) Cut() *Document {
	d.command(GS, 'V', 0x00)
	return d
}

// PartialCut sends the partial cut command.
func (d *Document) PartialCut() *Document {
	d.command(GS, 'V', 0x01)
	return d
}

// Bytes returns the accumulated byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// String returns the accumulated output as text
func (d *Document) String() string {
	return d.buf.String()
}

// Reset clears the buffer and reinitializes the document.
func (d *Document) Reset() *Document {
	d.buf.Reset()
	d.Init()
	return d
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// wrap splits s into lines of at most width runes, breaking on spaces where possible.
func wrap(s string, width int) []string {
	if width <= 0 || runeLen(s) <= width {
		return []string{s}
	}
	var lines []string
	var cur []rune
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		for len(w) > width {
			if len(cur) > 0 {
				lines = append(lines, string(cur))
				cur = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(cur) == 0:
			cur = w
		case len(cur)+1+len(w) <= width:
			cur = append(append(cur, ' '), w...)
		default:
			lines = append(lines, string(cur))
			cur = w
		}
	}
	if len(cur) > 0 || len(lines) == 0 {
		lines = append(lines, string(cur))
	}
	return lines
}
