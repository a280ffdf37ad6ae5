package render

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

// Markdown renders a markdown document for the terminal using glamour.
// The style adapts to the detected light/dark background.
func Markdown(doc string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
	)
	if err != nil {
		return "", err
	}
	return r.Render(doc)
}

// Pass formats a success status line.
func Pass(msg string) string {
	p := termenv.ColorProfile()
	return termenv.String(msg).Foreground(p.Color("#4ade80")).Bold().String()
}

// Fail formats a failure status line.
func Fail(msg string) string {
	p := termenv.ColorProfile()
	return termenv.String(msg).Foreground(p.Color("#f87171")).Bold().String()
}
