package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/wordbook/internal/utils"
	"github.com/bastiangx/wordbook/pkg/suggest"
	"github.com/charmbracelet/log"
)

// InputHandler reads queries from a stream, one per line, and runs them
// through a Searcher. A leading '/' makes the rest of the line a pattern,
// a leading '~' a fuzzy query; anything else is an exact lookup.
type InputHandler struct {
	searcher   *Searcher
	printer    *Printer
	opts       suggest.Options
	fuzzyLevel int
	maxLength  int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(searcher *Searcher, printer *Printer, opts suggest.Options, fuzzyLevel, maxLength int) *InputHandler {
	return &InputHandler{
		searcher:   searcher,
		printer:    printer,
		opts:       opts,
		fuzzyLevel: fuzzyLevel,
		maxLength:  maxLength,
	}
}

// Start begins the prompt loop and returns nil once it reaches EOF.
// Fatal state errors stop the loop; input errors are reported and skipped.
func (h *InputHandler) Start(in io.Reader) error {
	h.printer.Message("type a word and press Enter (/pattern, ~fuzzy, Ctrl+D to exit):")
	reader := bufio.NewReader(in)

	for {
		fmt.Fprint(h.printer.out, "> ")
		line, err := reader.ReadString('\n')
		if query := strings.TrimSpace(line); query != "" {
			if herr := h.handleInput(query); herr != nil {
				if errors.Is(herr, utils.ErrStateIO) {
					return herr
				}
				h.printer.Message(herr.Error())
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// handleInput validates one query and dispatches it to the right mode.
func (h *InputHandler) handleInput(query string) error {
	if h.maxLength > 0 && utils.RuneLen(query) > h.maxLength {
		log.Warnf("Query too long: %d characters (max %d)", utils.RuneLen(query), h.maxLength)
		return nil
	}
	if utils.IsOnlyNumbers(query) {
		log.Debugf("Ignoring numeric query %q", query)
		h.printer.Suggestions(nil)
		return nil
	}

	switch {
	case strings.HasPrefix(query, "/") && len(query) > 1:
		return h.searcher.Pattern(query[1:], h.opts)
	case strings.HasPrefix(query, "~") && len(query) > 1:
		return h.searcher.Fuzzy(query[1:], h.fuzzyLevel, h.opts)
	default:
		return h.searcher.Word(query, h.opts)
	}
}
