package parsers

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/suzuki-shunsuke/warnings/pkg/issue"
	"github.com/suzuki-shunsuke/warnings/pkg/parser"
)

// newXMLDecoder returns a decoder of already decoded text.
// The encoding declared in the XML prolog is ignored because parser.Input has converted the content to UTF-8.
func newXMLDecoder(text string) *xml.Decoder {
	dec := xml.NewDecoder(strings.NewReader(text))
	dec.CharsetReader = func(_ string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	return dec
}

// walkXML calls fn for each start element.
// A syntax error stops the walk, and the rest of the document is counted as one skipped record.
func walkXML(in *parser.Input, report *issue.Report, fn func(dec *xml.Decoder, se xml.StartElement) error) error {
	text, err := in.ReadAll()
	if err != nil {
		return err //nolint:wrapcheck
	}
	dec := newXMLDecoder(text)
	for {
		tok, err := dec.Token()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				report.AddSkipped(1)
			}
			return nil
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if err := fn(dec, se); err != nil {
			report.AddSkipped(1)
			var syntaxErr *xml.SyntaxError
			if errors.As(err, &syntaxErr) {
				return nil
			}
		}
	}
}

func attr(se xml.StartElement, name string) string {
	for _, a := range se.Attr {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}
