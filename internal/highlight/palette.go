package highlight

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// Palette holds UI colors derived from a Chroma theme. Grays are blends of
// the theme background toward its foreground.
type Palette struct {
	Bg     string
	Fg     string
	Border string // 10% bg→fg
	Dim    string // 25% bg→fg, help and status text
	SelBg  string // 30% bg→accent, selection background
	Accent string // Most saturated token color
	Error  string // Error token, 45% toward fg
}

// ThemePalette derives a palette from a theme name. Same theme, same output.
func ThemePalette(theme string) Palette {
	sty := styles.Get(theme)
	if sty == nil {
		return defaultPalette()
	}
	entry := sty.Get(chroma.Background)
	bg, fg := "#000000", "#c8c8c8"
	if entry.Background.IsSet() {
		bg = entry.Background.String()
	}
	if entry.Colour.IsSet() {
		fg = entry.Colour.String()
	}
	accent := pickAccent(sty, fg)
	return Palette{
		Bg:     bg,
		Fg:     fg,
		Border: lerpHex(bg, fg, 0.10),
		Dim:    lerpHex(bg, fg, 0.25),
		SelBg:  lerpHex(bg, accent, 0.30),
		Accent: accent,
		Error:  pickError(sty, bg, fg),
	}
}

func defaultPalette() Palette {
	return Palette{
		Bg: "#000000", Fg: "#c8c8c8",
		Border: "#141414", Dim: "#323232",
		SelBg: "#00434c", Accent: "#00dfff", Error: "#932e2e",
	}
}

// pickAccent returns the most saturated foreground color across all tokens.
func pickAccent(sty *chroma.Style, fallback string) string {
	best, bestSat := fallback, 0.0
	for _, tt := range sty.Types() {
		e := sty.Get(tt)
		if !e.Colour.IsSet() {
			continue
		}
		hex := e.Colour.String()
		if sat := saturation(hex); sat > bestSat {
			best, bestSat = hex, sat
		}
	}
	return best
}

func saturation(hex string) float64 {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return 0
	}
	hi := max(r, g, b)
	if hi == 0 {
		return 0
	}
	return float64(hi-min(r, g, b)) / float64(hi)
}

func pickError(sty *chroma.Style, bg, fg string) string {
	e := sty.Get(chroma.Error)
	if !e.Colour.IsSet() {
		return lerpHex(bg, fg, 0.45)
	}
	return lerpHex(bg, e.Colour.String(), 0.45)
}

// lerpHex linearly interpolates between two hex colors at fraction t.
func lerpHex(a, b string, t float64) string {
	ar, ag, ab, _ := parseHex(a)
	br, bg, bb, _ := parseHex(b)
	mix := func(x, y int) int {
		return min(max(int(float64(x)+float64(y-x)*t+0.5), 0), 255)
	}
	return fmt.Sprintf("#%02x%02x%02x", mix(ar, br), mix(ag, bg), mix(ab, bb))
}
