package screen

import "strings"

// Preset names one of the fixed colors.
type Preset uint8

const (
	Black Preset = iota
	White
	Red
	Green
	Blue
)

var presetColors = [...]Color{
	Black: {0x00, 0x00, 0x00},
	White: {0xFF, 0xFF, 0xFF},
	Red:   {0xFF, 0x00, 0x00},
	Green: {0x00, 0xFF, 0x00},
	Blue:  {0x00, 0x00, 0xFF},
}

var presetNames = [...]string{
	Black: "black",
	White: "white",
	Red:   "red",
	Green: "green",
	Blue:  "blue",
}

// Color returns the value of p. Unknown presets are black.
func (p Preset) Color() Color {
	if int(p) >= len(presetColors) {
		return Color{}
	}
	return presetColors[p]
}

func (p Preset) String() string {
	if int(p) >= len(presetNames) {
		return "Preset(UNKNOWN)"
	}
	return presetNames[p]
}

// ParsePreset looks up a preset by name, ignoring case.
func ParsePreset(name string) (Preset, bool) {
	for i, n := range presetNames {
		if strings.EqualFold(n, name) {
			return Preset(i), true
		}
	}
	return 0, false
}

// Presets lists every preset in declaration order.
func Presets() []Preset {
	p := make([]Preset, len(presetNames))
	for i := range p {
		p[i] = Preset(i)
	}
	return p
}
