package parser

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

var (
	ErrInputUnreadable = errors.New("input is unreadable")
	errInvalidUTF8     = errors.New("input isn't valid UTF-8")
)

// InputError is returned when an input can't be opened, read or decoded.
// errors.Is(err, ErrInputUnreadable) is true for it.
type InputError struct {
	Name string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Name, e.Err)
}

func (e *InputError) Unwrap() []error {
	return []error{ErrInputUnreadable, e.Err}
}

// Source is something parsers can read, a file or a captured console log.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

type fileSource struct {
	fs   afero.Fs
	path string
}

// FileSource returns a Source reading a file.
func FileSource(fs afero.Fs, path string) Source {
	return &fileSource{fs: fs, path: path}
}

func (s *fileSource) Name() string {
	return s.path
}

func (s *fileSource) Open() (io.ReadCloser, error) {
	f, err := s.fs.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open a file: %w", err)
	}
	return f, nil
}

type bytesSource struct {
	name    string
	content []byte
}

// BytesSource returns a Source reading content, e.g. console output captured from stdin.
func BytesSource(name string, content []byte) Source {
	return &bytesSource{name: name, content: content}
}

// StringSource returns a Source reading content.
func StringSource(name, content string) Source {
	return &bytesSource{name: name, content: []byte(content)}
}

func (s *bytesSource) Name() string {
	return s.name
}

func (s *bytesSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(s.content)), nil
}

// Input is one unit of parser input.
type Input struct {
	Source Source
	// Encoding is a declared character encoding like "UTF-8", "windows-1252" or "Shift_JIS".
	// Empty means UTF-8.
	Encoding string
	// Transform rewrites file names found in the input, e.g. to strip a build directory. It may be nil.
	Transform func(string) string
}

func (in *Input) Name() string {
	return in.Source.Name()
}

// TransformName applies Transform to name.
func (in *Input) TransformName(name string) string {
	if in.Transform == nil {
		return name
	}
	return in.Transform(name)
}

const (
	bom         = "\ufeff"
	maxLineSize = 1024 * 1024
)

func (in *Input) error(err error) error {
	return &InputError{Name: in.Name(), Err: err}
}

func isUTF8(name string) bool {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return true
	}
	return false
}

func newDecoder(name string) (*encoding.Decoder, error) {
	if isUTF8(name) {
		return nil, nil //nolint:nilnil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown encoding %q: %w", name, err)
	}
	return enc.NewDecoder(), nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

// Reader opens the source and decodes it into UTF-8.
// For UTF-8 inputs the bytes are returned as is, so callers must validate them.
func (in *Input) Reader() (io.ReadCloser, error) {
	rc, err := in.Source.Open()
	if err != nil {
		return nil, in.error(err)
	}
	dec, err := newDecoder(in.Encoding)
	if err != nil {
		rc.Close()
		return nil, in.error(err)
	}
	if dec == nil {
		return rc, nil
	}
	return &readCloser{Reader: transform.NewReader(rc, dec), Closer: rc}, nil
}

// ReadAll returns the whole decoded content.
func (in *Input) ReadAll() (string, error) {
	rc, err := in.Reader()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return "", in.error(err)
	}
	if !utf8.Valid(b) {
		return "", in.error(errInvalidUTF8)
	}
	return strings.TrimPrefix(string(b), bom), nil
}

// ScanLines calls fn for each line of the decoded content. Line numbers start at 1.
// Lines longer than maxLineSize are dropped and counted in the returned number;
// they still take a line number.
// An error returned by fn stops the scan and is returned as is.
func (in *Input) ScanLines(fn func(number int, line string) error) (int, error) {
	rc, err := in.Reader()
	if err != nil {
		return 0, err
	}
	defer rc.Close()
	r := bufio.NewReaderSize(rc, 64*1024) //nolint:mnd
	number := 0
	dropped := 0
	buf := []byte{}
	tooLong := false
	for {
		frag, isPrefix, err := r.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return dropped, nil
			}
			return dropped, in.error(err)
		}
		if !tooLong {
			if len(buf)+len(frag) > maxLineSize {
				tooLong = true
				buf = buf[:0]
			} else {
				buf = append(buf, frag...)
			}
		}
		if isPrefix {
			continue
		}
		number++
		if tooLong {
			dropped++
			tooLong = false
			continue
		}
		line := string(buf)
		buf = buf[:0]
		if number == 1 {
			line = strings.TrimPrefix(line, bom)
		}
		if !utf8.ValidString(line) {
			return dropped, in.error(fmt.Errorf("line %d: %w", number, errInvalidUTF8))
		}
		if err := fn(number, line); err != nil {
			return dropped, err
		}
	}
}
