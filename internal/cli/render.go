package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	wordStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"})
	hintStyle = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#797593", Dark: "#908caa"})
)

// Printer writes human-facing results. Styling degrades to plain text when
// the output is not a terminal.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer on out.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Definitions prints every definition of word, blank line separated.
func (p *Printer) Definitions(word string, defs []string) {
	fmt.Fprintln(p.out, headingStyle.Render(fmt.Sprintf("Definitions for: '%s':", word)))
	for _, d := range defs {
		fmt.Fprintf(p.out, "%s\n\n", d)
	}
}

// Variant points at the capitalized form of a word.
func (p *Printer) Variant(upper string) {
	fmt.Fprintln(p.out, hintStyle.Render("See capitalized version: ")+wordStyle.Render(upper))
}

// Suggestions prints "did you mean" candidates, or the no-match notice.
func (p *Printer) Suggestions(words []string) {
	if len(words) == 0 {
		p.Message("No matches found")
		return
	}
	fmt.Fprintln(p.out, headingStyle.Render("Did you mean one of these?"))
	for _, w := range words {
		fmt.Fprintf(p.out, " - %s\n", wordStyle.Render(w))
	}
}

// List prints a titled list, or empty when there is nothing to show.
func (p *Printer) List(title string, items []string, empty string) {
	if len(items) == 0 {
		p.Message(empty)
		return
	}
	fmt.Fprintln(p.out, headingStyle.Render(title))
	for _, item := range items {
		fmt.Fprintln(p.out, item)
	}
}

// Word prints a single highlighted word under a title.
func (p *Printer) Word(title, word string) {
	fmt.Fprintf(p.out, "%s %s\n", headingStyle.Render(title), wordStyle.Render(word))
}

// Message prints a plain line.
func (p *Printer) Message(msg string) {
	fmt.Fprintln(p.out, msg)
}
