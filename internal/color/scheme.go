package color

import "sort"

// Scheme is one named palette entry: the primary geometry color, a
// secondary mid tone, the canvas background, and an accent for highlights
// and beat flashes.
type Scheme struct {
	Name       string
	Primary    RGB
	Secondary  RGB
	Background RGB
	Accent     RGB
}

// DefaultSchemeName is the fallback for unknown scheme names, matching the
// platform's request default.
const DefaultSchemeName = "blue"

var schemes = map[string]Scheme{
	"blue": {
		Name:       "blue",
		Primary:    RGB{0x3b, 0x82, 0xf6},
		Secondary:  RGB{0x06, 0xb6, 0xd4},
		Background: RGB{0x0b, 0x12, 0x20},
		Accent:     RGB{0x93, 0xc5, 0xfd},
	},
	"purple": {
		Name:       "purple",
		Primary:    RGB{0x8b, 0x5c, 0xf6},
		Secondary:  RGB{0xec, 0x48, 0x99},
		Background: RGB{0x14, 0x0a, 0x26},
		Accent:     RGB{0xc4, 0xb5, 0xfd},
	},
	"green": {
		Name:       "green",
		Primary:    RGB{0x22, 0xc5, 0x5e},
		Secondary:  RGB{0x84, 0xcc, 0x16},
		Background: RGB{0x07, 0x1a, 0x0f},
		Accent:     RGB{0x86, 0xef, 0xac},
	},
	"sunset": {
		Name:       "sunset",
		Primary:    RGB{0xf9, 0x73, 0x16},
		Secondary:  RGB{0xef, 0x44, 0x44},
		Background: RGB{0x1f, 0x0a, 0x0a},
		Accent:     RGB{0xfa, 0xcc, 0x15},
	},
	"mono": {
		Name:       "mono",
		Primary:    RGB{0xe5, 0xe7, 0xeb},
		Secondary:  RGB{0x9c, 0xa3, 0xaf},
		Background: RGB{0x0a, 0x0a, 0x0a},
		Accent:     RGB{0xff, 0xff, 0xff},
	},
}

// Lookup resolves a scheme name. Unknown names fall back to the default
// scheme; the second return reports whether the name was recognized so the
// caller can log the fallback.
func Lookup(name string) (Scheme, bool) {
	if s, ok := schemes[name]; ok {
		return s, true
	}
	return schemes[DefaultSchemeName], false
}

// SchemeNames returns the known scheme names, sorted.
func SchemeNames() []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Gradient returns the scheme's primary → secondary → accent ramp used to
// color geometry by position.
func (s Scheme) Gradient() Gradient {
	return Gradient{
		{Pos: 0, Color: s.Primary},
		{Pos: 0.5, Color: s.Secondary},
		{Pos: 1, Color: s.Accent},
	}
}
