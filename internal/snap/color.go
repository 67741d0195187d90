package snap

import (
	"fmt"
	"image/color"
	"strings"
)

// ParseHexColor parses "#rgb" or "#rrggbb" (leading '#' optional) into
// a fully opaque NRGBA. Settings carry colors as hex strings, matching
// what the UI layer stores.
func ParseHexColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")

	hexNibble := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}

	switch len(s) {
	case 3:
		var v [3]uint8
		for i := 0; i < 3; i++ {
			n, ok := hexNibble(s[i])
			if !ok {
				return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
			}
			v[i] = n<<4 | n
		}
		return color.NRGBA{R: v[0], G: v[1], B: v[2], A: 0xff}, nil
	case 6:
		var v [3]uint8
		for i := 0; i < 3; i++ {
			hi, ok1 := hexNibble(s[2*i])
			lo, ok2 := hexNibble(s[2*i+1])
			if !ok1 || !ok2 {
				return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
			}
			v[i] = hi<<4 | lo
		}
		return color.NRGBA{R: v[0], G: v[1], B: v[2], A: 0xff}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: want #rgb or #rrggbb", s)
	}
}
