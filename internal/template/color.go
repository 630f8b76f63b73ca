package template

import (
	"encoding/hex"
	"image/color"
	"strings"

	"github.com/KirkDiggler/ducttape-items/internal/errors"
)

// ParseMaskColor parses "#RRGGBB" or "#RRGGBBAA". Alpha defaults to opaque.
func ParseMaskColor(s string) (color.NRGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(raw) != 6 && len(raw) != 8 {
		return color.NRGBA{}, errors.InvalidArgumentf("mask color %q must be #RRGGBB or #RRGGBBAA", s)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return color.NRGBA{}, errors.WrapWithCodef(err, errors.CodeInvalidArgument, "mask color %q is not hex", s)
	}
	c := color.NRGBA{R: b[0], G: b[1], B: b[2], A: 0xff}
	if len(b) == 4 {
		c.A = b[3]
	}
	return c, nil
}

// FormatMaskColor renders c as "#RRGGBBAA"
func FormatMaskColor(c color.NRGBA) string {
	return "#" + strings.ToUpper(hex.EncodeToString([]byte{c.R, c.G, c.B, c.A}))
}
