package settings

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color that always carries an alpha channel in [0, 1].
// Both "#RRGGBB" and "rgba(r,g,b,a)" forms parse into it.
type Color struct {
	R, G, B uint8
	A       float64
}

var hexColorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

var rgbaPattern = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*([0-9]*\.?[0-9]+)\s*)?\)$`)

// ParseColor accepts #RGB, #RRGGBB, #RRGGBBAA, rgb(r,g,b) and rgba(r,g,b,a).
// An rgba alpha above 1 is read on the 0-255 scale.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	m := rgbaPattern.FindStringSubmatch(strings.ToLower(s))
	if m == nil {
		return Color{}, fmt.Errorf("unrecognised color %q", s)
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		v, _ := strconv.Atoi(m[i+1])
		if v > 255 {
			return Color{}, fmt.Errorf("color component %d out of range in %q", v, s)
		}
		rgb[i] = uint8(v)
	}
	alpha := 1.0
	if m[4] != "" {
		a, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return Color{}, fmt.Errorf("bad alpha in %q: %w", s, err)
		}
		if a > 1 {
			a /= 255
		}
		alpha = clamp01(a)
	}
	return Color{R: rgb[0], G: rgb[1], B: rgb[2], A: alpha}, nil
}

func parseHex(s string) (Color, error) {
	if !hexColorPattern.MatchString(s) {
		return Color{}, fmt.Errorf("unrecognised color %q", s)
	}
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("bad alpha in %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("unrecognised color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// MustParseColor is ParseColor for literals known to be valid.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) Opaque() bool { return c.A >= 1 }

// Hex renders the RGB part as #RRGGBB, ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	if c.Opaque() {
		return c.Hex()
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Over flattens c onto base, scaling c's own alpha by opacity. The result is
// opaque, for surfaces that cannot draw translucency.
func (c Color) Over(base Color, opacity float64) Color {
	alpha := clamp01(c.A * opacity)
	mixed := base.colorful().BlendRgb(c.colorful(), alpha).Clamped()
	r, g, b := mixed.RGB255()
	return Color{R: r, G: g, B: b, A: 1}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
