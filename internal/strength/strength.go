// Package strength scores candidate passwords for UI feedback.
package strength

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Level is the coarse strength class of a password.
type Level int

const (
	Weak Level = iota
	Medium
	Strong
)

func (l Level) String() string {
	switch l {
	case Strong:
		return "Strong"
	case Medium:
		return "Medium"
	default:
		return "Weak"
	}
}

// Indicator is the colour a level is shown in.
type Indicator struct {
	Name string
	Hex  string
}

var (
	IndicatorWeak   = Indicator{Name: "red", Hex: "#ff4d4f"}
	IndicatorMedium = Indicator{Name: "orange", Hex: "#faad14"}
	IndicatorStrong = Indicator{Name: "green", Hex: "#52c41a"}
)

// MaxScore is the score of a password meeting every criterion.
const MaxScore = 5

// Result is the outcome of [Evaluate].
type Result struct {
	Score     int
	Level     Level
	Indicator Indicator
}

// Evaluate awards one point for each of: length of at least 8 characters,
// an ASCII uppercase letter, an ASCII lowercase letter, an ASCII digit, any
// other character. Letters outside ASCII count as symbols. Up to 2 points
// is Weak, 3 or 4 Medium, 5 Strong.
func Evaluate(candidate string) Result {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	length := 0

	for _, r := range candidate {
		length++
		switch {
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case 'a' <= r && r <= 'z':
			hasLower = true
		case '0' <= r && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	score := 0
	for _, ok := range []bool{length >= 8, hasUpper, hasLower, hasDigit, hasSymbol} {
		if ok {
			score++
		}
	}

	return resultFor(score)
}

func resultFor(score int) Result {
	switch {
	case score >= MaxScore:
		return Result{Score: score, Level: Strong, Indicator: IndicatorStrong}
	case score >= 3:
		return Result{Score: score, Level: Medium, Indicator: IndicatorMedium}
	default:
		return Result{Score: score, Level: Weak, Indicator: IndicatorWeak}
	}
}

// Render returns a coloured meter and label for the terminal UI,
// e.g. "■■■□□ Medium".
func (r Result) Render() string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(r.Indicator.Hex)).Bold(true)
	meter := strings.Repeat("■", r.Score) + strings.Repeat("□", MaxScore-r.Score)

	return style.Render(meter + " " + r.Level.String())
}
