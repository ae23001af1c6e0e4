package dictionary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileFormat represents the corpus source encodings
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatJSON               // Array of {word, definitions}
	FormatMsgpack            // Same records, msgpack encoded
)

// FormatInfo contains metadata about a corpus file format
type FormatInfo struct {
	Format      FileFormat
	Description string
	Extensions  []string
	MinSize     int64 // Minimum expected file size in bytes
}

var supportedFormats = map[FileFormat]FormatInfo{
	FormatJSON: {
		Format:      FormatJSON,
		Description: "JSON Corpus",
		Extensions:  []string{".json"},
		MinSize:     2, // "[]"
	},
	FormatMsgpack: {
		Format:      FormatMsgpack,
		Description: "Msgpack Corpus",
		Extensions:  []string{".msgpack", ".mpk"},
		MinSize:     1, // empty array marker
	},
}

func (f FileFormat) String() string {
	if info, ok := supportedFormats[f]; ok {
		return info.Description
	}
	return "unknown"
}

// DetectFileFormat picks the format from the file extension and checks that
// the file is large enough to hold a corpus of that format.
func DetectFileFormat(filename string) (FileFormat, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	for format, info := range supportedFormats {
		for _, e := range info.Extensions {
			if e != ext {
				continue
			}
			if err := validateSize(filename, info); err != nil {
				return FormatUnknown, err
			}
			return format, nil
		}
	}
	return FormatUnknown, fmt.Errorf("unable to detect format for file %s (extension %q)", filename, ext)
}

func validateSize(filename string, info FormatInfo) error {
	stat, err := os.Stat(filename)
	if err != nil {
		return fmt.Errorf("failed to stat file %s: %w", filename, err)
	}
	if stat.Size() < info.MinSize {
		return fmt.Errorf("file %s is too small (%d bytes) for format %s (minimum: %d bytes)",
			filename, stat.Size(), info.Description, info.MinSize)
	}
	return nil
}
