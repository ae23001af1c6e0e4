package dictionary

import (
	"bufio"
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bastiangx/wordbook/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrLoad marks any failure to read or decode a corpus. It is fatal for the CLI.
var ErrLoad = errors.New("corpus load failed")

// Embedded corpus variants.
const (
	VariantDefault = "default"
	VariantMarkup  = "markup"
)

//go:embed data/*.json
var embedded embed.FS

// LoadEmbedded builds the corpus shipped with the binary.
func LoadEmbedded(variant string) (*Corpus, error) {
	if variant == "" {
		variant = VariantDefault
	}
	data, err := embedded.ReadFile("data/" + variant + ".json")
	if err != nil {
		return nil, fmt.Errorf("%w: unknown embedded variant %q", ErrLoad, variant)
	}
	c, err := Load(bytes.NewReader(data), FormatJSON)
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded embedded %s corpus: %d words, %d entries", variant, c.Len(), c.Entries())
	return c, nil
}

// LoadFile reads a corpus from disk, choosing the decoder by extension.
func LoadFile(path string) (*Corpus, error) {
	format, err := DetectFileFormat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer file.Close()

	c, err := Load(bufio.NewReader(file), format)
	if err != nil {
		return nil, err
	}
	log.Debugf("Loaded %s from %s: %d words, %d entries", format, path, c.Len(), c.Entries())
	return c, nil
}

// Load decodes an array of entries. Malformed input is an ErrLoad.
func Load(r io.Reader, format FileFormat) (*Corpus, error) {
	var entries []Entry
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		if err := dec.Decode(&entries); err != nil {
			return nil, fmt.Errorf("%w: malformed JSON: %v", ErrLoad, err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: malformed JSON: trailing data after the entry array", ErrLoad)
		}
	case FormatMsgpack:
		dec := msgpack.NewDecoder(r)
		if err := dec.Decode(&entries); err != nil {
			return nil, fmt.Errorf("%w: malformed msgpack: %v", ErrLoad, err)
		}
		if _, err := dec.DecodeInterfaceLoose(); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: malformed msgpack: trailing data after the entry array", ErrLoad)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %v", ErrLoad, format)
	}

	if entries == nil {
		return nil, fmt.Errorf("%w: expected an array of entries", ErrLoad)
	}
	for i, e := range entries {
		if !utils.IsValidTerm(e.Word) {
			return nil, fmt.Errorf("%w: entry %d has an empty or multi-line word %q", ErrLoad, i, e.Word)
		}
		if e.Definitions == nil {
			return nil, fmt.Errorf("%w: entry %d (%q) has no definitions list", ErrLoad, i, e.Word)
		}
	}
	return New(entries), nil
}
