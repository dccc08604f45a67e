package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/strength"
	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

var (
	successText = color.New(color.FgGreen)
	errorText   = color.New(color.FgRed, color.Bold)
	warnText    = color.New(color.FgYellow)
	infoText    = color.New(color.FgCyan)
	mutedText   = color.New(color.FgHiBlack)
)

var levelText = map[strength.Level]*color.Color{
	strength.Weak:   color.New(color.FgRed),
	strength.Medium: color.New(color.FgYellow),
	strength.Strong: color.New(color.FgGreen),
}

func printSuccess(w io.Writer, format string, a ...any) {
	_, _ = successText.Fprintf(w, "✓ "+format+"\n", a...)
}

func printWarning(w io.Writer, format string, a ...any) {
	_, _ = warnText.Fprintf(w, format+"\n", a...)
}

func printError(w io.Writer, err error) {
	_, _ = errorText.Fprint(w, "Error: ")
	_, _ = fmt.Fprintln(w, service.UserMessage(err))
}

func printStrength(w io.Writer, r strength.Result) {
	_, _ = fmt.Fprint(w, "Strength: ")
	_, _ = levelText[r.Level].Fprintf(w, "%s (%d/%d)\n", r.Level, r.Score, strength.MaxScore)
}

// withSpinner runs fn while a spinner is shown on w. The spinner only draws
// when stdout is a terminal.
func withSpinner(w io.Writer, message string, fn func() error) error {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	_ = s.Color("cyan")

	s.Start()
	err := fn()
	s.Stop()

	return err
}
