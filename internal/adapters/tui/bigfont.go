package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// glyphs maps each digit and the colon to a 5-line block representation.
// Digits are 5 cells wide, the colon 1.
var glyphs = map[rune][5]string{
	'0': {
		"█████",
		"█   █",
		"█   █",
		"█   █",
		"█████",
	},
	'1': {
		"  █  ",
		" ██  ",
		"  █  ",
		"  █  ",
		" ███ ",
	},
	'2': {
		"█████",
		"    █",
		"█████",
		"█    ",
		"█████",
	},
	'3': {
		"█████",
		"    █",
		" ████",
		"    █",
		"█████",
	},
	'4': {
		"█   █",
		"█   █",
		"█████",
		"    █",
		"    █",
	},
	'5': {
		"█████",
		"█    ",
		"█████",
		"    █",
		"█████",
	},
	'6': {
		"█████",
		"█    ",
		"█████",
		"█   █",
		"█████",
	},
	'7': {
		"█████",
		"    █",
		"   █ ",
		"  █  ",
		"  █  ",
	},
	'8': {
		"█████",
		"█   █",
		"█████",
		"█   █",
		"█████",
	},
	'9': {
		"█████",
		"█   █",
		"█████",
		"    █",
		"█████",
	},
	':': {
		" ",
		"█",
		" ",
		"█",
		" ",
	},
}

// renderBigClock renders an MM:SS string as large block digits.
func renderBigClock(clock string, color lipgloss.Color) string {
	var lines [5]strings.Builder

	for i, r := range clock {
		glyph, ok := glyphs[r]
		if !ok {
			continue
		}
		for row := 0; row < 5; row++ {
			if i > 0 {
				lines[row].WriteString("  ")
			}
			lines[row].WriteString(glyph[row])
		}
	}

	rendered := make([]string, 5)
	style := lipgloss.NewStyle().Foreground(color)
	for row := 0; row < 5; row++ {
		rendered[row] = style.Render(lines[row].String())
	}

	return strings.Join(rendered, "\n")
}
