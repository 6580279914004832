package parser

import (
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	headerSize  = 4096
	headerLines = 10
)

// Header is the beginning of an input. Parsers decide whether they can handle
// an input by looking at it, without reading the whole content.
type Header struct {
	Path  string
	Lines []string
}

// ReadHeader reads the first lines of the input.
func ReadHeader(in *Input) (*Header, error) {
	rc, err := in.Reader()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	buf := make([]byte, headerSize)
	n, err := io.ReadFull(rc, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, in.error(err)
	}
	s := strings.TrimPrefix(strings.ToValidUTF8(string(buf[:n]), ""), bom)
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	if len(lines) > headerLines {
		lines = lines[:headerLines]
	}
	return &Header{
		Path:  in.Name(),
		Lines: lines,
	}, nil
}

// Ext returns the lower cased file extension of the path, e.g. ".xml".
func (h *Header) Ext() string {
	return strings.ToLower(filepath.Ext(h.Path))
}

// FirstLine returns the first non blank line without surrounding spaces.
func (h *Header) FirstLine() string {
	for _, line := range h.Lines {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return ""
}

// Contains reports whether any header line contains s.
func (h *Header) Contains(s string) bool {
	for _, line := range h.Lines {
		if strings.Contains(line, s) {
			return true
		}
	}
	return false
}

var (
	// <?xml ...?>, <!DOCTYPE ...>, <!-- ... -->, <root attr="..."> or <root>.
	// "<stdin>:1:5: warning: ..." isn't a document.
	xmlStart = regexp.MustCompile(`^<(?:\?xml|!DOCTYPE|!--|[A-Za-z_][\w.:-]*(?:\s|/?>\s*(?:<|$)|$))`)
	// {"key": ...} or {} for an object, [ followed by an object, an array, a string or the end of the line for an array.
	// "[INFO] ...", "[javac] ..." and "[12:00:01] ..." aren't documents.
	jsonStart = regexp.MustCompile(`^(?:\{\s*(?:"|\}|$)|\[\s*(?:[{\["\]]|$))`)
)

// IsXML reports whether the input is an XML document.
// Either the path has the .xml extension or the first line starts like a document.
func (h *Header) IsXML() bool {
	return h.Ext() == ".xml" || xmlStart.MatchString(h.FirstLine())
}

// IsJSON reports whether the input is a JSON document.
func (h *Header) IsJSON() bool {
	return h.Ext() == ".json" || jsonStart.MatchString(h.FirstLine())
}

// IsText reports whether the input is neither an XML nor a JSON document.
// Console logs whose lines start with "[" or "<" are text.
func (h *Header) IsText() bool {
	return !h.IsXML() && !h.IsJSON()
}
