package text

import (
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
)

// ANSI renders t with 24-bit colour escape sequences.
// Spans without a colour are rendered white.
func (t Text) ANSI() string {
	var b strings.Builder
	for _, span := range t {
		if span.Content == "" {
			continue
		}
		c := span.Color
		if c == tcell.ColorDefault {
			c = White
		}
		r, g, bl := c.RGB()
		painter := color.RGB(int(r), int(g), int(bl))
		if span.Style.Bold {
			painter.Add(color.Bold)
		}
		if span.Style.Italic {
			painter.Add(color.Italic)
		}
		if span.Style.Underline {
			painter.Add(color.Underline)
		}
		if span.Style.Strikethrough {
			painter.Add(color.CrossedOut)
		}
		painter.EnableColor()
		b.WriteString(painter.Sprint(span.Content))
	}
	return b.String()
}

// BBCode renders t using BBCode tags understood by rich text labels
func (t Text) BBCode() string {
	var b strings.Builder
	for _, span := range t {
		if span.Content == "" {
			continue
		}
		var open, closing []string
		if span.Color != tcell.ColorDefault {
			open = append(open, "[color="+hexColor(span.Color)+"]")
			closing = append(closing, "[/color]")
		}
		if span.Style.Bold {
			open = append(open, "[b]")
			closing = append(closing, "[/b]")
		}
		if span.Style.Italic {
			open = append(open, "[i]")
			closing = append(closing, "[/i]")
		}
		if span.Style.Underline {
			open = append(open, "[u]")
			closing = append(closing, "[/u]")
		}
		if span.Style.Strikethrough {
			open = append(open, "[s]")
			closing = append(closing, "[/s]")
		}
		for _, tag := range open {
			b.WriteString(tag)
		}
		b.WriteString(span.Content)
		for i := len(closing) - 1; i >= 0; i-- {
			b.WriteString(closing[i])
		}
	}
	return b.String()
}
