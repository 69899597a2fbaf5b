package scan

import (
	"io"
	"os"

	"github.com/h2non/filetype"
	"github.com/pkg/errors"
)

// HeaderSize is how much of a file is handed to a Sniffer.  It is enough to match
// every magic number filetype knows.
const HeaderSize = 262

// Sniffer identifies a media type from the first bytes of content.  The empty
// string means the content was not recognized.
type Sniffer interface {
	Sniff(head []byte) string
}

// SnifferFunc is a function that can be used to satisfy the Sniffer interface
type SnifferFunc func(head []byte) string

// Sniff identifies content by calling f
func (f SnifferFunc) Sniff(head []byte) string {
	return f(head)
}

// MagicNumbers identifies content by the magic numbers known to h2non/filetype
var MagicNumbers Sniffer = SnifferFunc(func(head []byte) string {
	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
})

func sniffFile(s Sniffer, path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "could not open %s", path)
	}
	defer file.Close()

	head := make([]byte, HeaderSize)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", errors.Wrapf(err, "could not read %s", path)
	}
	if n == 0 {
		return "", nil
	}

	return s.Sniff(head[:n]), nil
}
