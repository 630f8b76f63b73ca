// Package text provides coloured rich-text spans and renderers for terminals
// and BBCode-capable UI labels.
package text

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Display colours used for modifier classification
var (
	Green  = tcell.NewRGBColor(85, 255, 85)
	Yellow = tcell.NewRGBColor(255, 255, 85)
	Red    = tcell.NewRGBColor(255, 85, 85)
	White  = tcell.NewRGBColor(255, 255, 255)
	Gray   = tcell.NewRGBColor(170, 170, 170)
)

// Style holds the formatting flags of a span
type Style struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
}

// Span is a run of content sharing one colour and style.
// A zero Color means the renderer default.
type Span struct {
	Content string
	Color   tcell.Color
	Style   Style
}

// Text is an ordered list of spans
type Text []Span

// Plain returns uncoloured text
func Plain(s string) Text {
	return Text{{Content: s}}
}

// Colored returns text in a single colour
func Colored(s string, c tcell.Color) Text {
	return Text{{Content: s, Color: c}}
}

// Bold returns bold uncoloured text
func Bold(s string) Text {
	return Text{{Content: s, Style: Style{Bold: true}}}
}

// Append returns t followed by every span of others
func (t Text) Append(others ...Text) Text {
	out := make(Text, 0, len(t)+len(others))
	out = append(out, t...)
	for _, o := range others {
		out = append(out, o...)
	}
	return out
}

// AppendString appends an uncoloured span
func (t Text) AppendString(s string) Text {
	return t.Append(Plain(s))
}

// String returns the content without any formatting
func (t Text) String() string {
	var b strings.Builder
	for _, span := range t {
		b.WriteString(span.Content)
	}
	return b.String()
}

// Width returns the display width of the content in terminal cells
func (t Text) Width() int {
	return runewidth.StringWidth(t.String())
}

// PadRight pads t with spaces up to width cells
func (t Text) PadRight(width int) Text {
	if w := t.Width(); w < width {
		return t.AppendString(strings.Repeat(" ", width-w))
	}
	return t
}

// Lines splits t at newline characters, keeping span colours
func (t Text) Lines() []Text {
	lines := []Text{{}}
	for _, span := range t {
		parts := strings.Split(span.Content, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, Text{})
			}
			if part != "" {
				cur := &lines[len(lines)-1]
				*cur = append(*cur, Span{Content: part, Color: span.Color, Style: span.Style})
			}
		}
	}
	return lines
}

func hexColor(c tcell.Color) string {
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
