// core/fasta/open.go
package fasta

import (
	"bufio"
	"compress/bzip2"
	"io"
	"os"

	gzip "github.com/klauspost/pgzip"
	"github.com/ulikunitz/xz"
)

// multiReadCloser closes every underlying closer when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// NewDecoder sniffs the stream's magic bytes and wraps r in the matching
// decompressor. Plain streams pass through. The format is detected from
// content, never from a file name, so piped input works the same way.
func NewDecoder(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	sig, err := br.Peek(6)
	if err != nil && err != io.EOF {
		return nil, err
	}
	switch {
	case len(sig) >= 2 && sig[0] == 0x1f && sig[1] == 0x8b:
		return gzip.NewReader(br)
	case len(sig) >= 3 && sig[0] == 'B' && sig[1] == 'Z' && sig[2] == 'h':
		return bzip2.NewReader(br), nil
	case len(sig) >= 6 && sig[0] == 0xfd && sig[1] == '7' && sig[2] == 'z' &&
		sig[3] == 'X' && sig[4] == 'Z' && sig[5] == 0x00:
		return xz.NewReader(br)
	default:
		return br, nil
	}
}

// Open opens path ("-" means stdin) behind transparent decompression.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		r, err := NewDecoder(os.Stdin)
		if err != nil {
			return nil, err
		}
		return io.NopCloser(r), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := NewDecoder(fh)
	if err != nil {
		_ = fh.Close()
		return nil, err
	}
	closers := []io.Closer{fh}
	if c, ok := r.(io.Closer); ok {
		closers = []io.Closer{c, fh}
	}
	return &multiReadCloser{Reader: r, closers: closers}, nil
}
