package record

import (
	"fmt"
	"strings"
)

// ColorCode identifies one of the seven marker colors. Zero is reserved for
// "no color" so a pointer-free optional can still round-trip through JSON.
type ColorCode int

const (
	Red ColorCode = iota + 1
	Orange
	Yellow
	Green
	Blue
	Purple
	Pink
)

var colorNames = map[ColorCode]string{
	Red:    "red",
	Orange: "orange",
	Yellow: "yellow",
	Green:  "green",
	Blue:   "blue",
	Purple: "purple",
	Pink:   "pink",
}

// Valid reports whether c is one of the seven defined colors.
func (c ColorCode) Valid() bool {
	_, ok := colorNames[c]
	return ok
}

func (c ColorCode) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", int(c))
}

// ColorByName resolves a color name, case insensitively.
func ColorByName(name string) (ColorCode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for code, n := range colorNames {
		if n == name {
			return code, nil
		}
	}
	return 0, fmt.Errorf("record: unknown color %q", name)
}

// AllColors returns the defined colors in code order.
func AllColors() []ColorCode {
	return []ColorCode{Red, Orange, Yellow, Green, Blue, Purple, Pink}
}
