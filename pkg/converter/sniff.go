package converter

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Format is what a file actually contains, regardless of its extension.
// The campus system hands out HTML pages named .XLS, which is the whole
// reason this package exists.
type Format int

const (
	FormatUnknown Format = iota
	FormatHTML
	FormatXLS  // OLE compound document, real Excel 97-2003
	FormatXLSX // ZIP container, real Excel 2007+
)

func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatXLS:
		return "xls"
	case FormatXLSX:
		return "xlsx"
	default:
		return "unknown"
	}
}

var (
	oleSignature = []byte{0xd0, 0xcf, 0x11, 0xe0}
	zipSignature = []byte("PK")
)

// Sniff reports the actual format of the file at path by its leading bytes.
func Sniff(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	head := make([]byte, 100)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return FormatUnknown, fmt.Errorf("failed to read %s: %w", path, err)
	}
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, []byte("<html")), bytes.HasPrefix(head, []byte("<!DOCTYPE")):
		return FormatHTML, nil
	case bytes.HasPrefix(head, oleSignature):
		return FormatXLS, nil
	case bytes.HasPrefix(head, zipSignature):
		return FormatXLSX, nil
	default:
		return FormatUnknown, nil
	}
}
