package wire

import "io"

// Source is the byte cursor profiles read from. A clean end of input is
// reported as io.EOF from ReadByte or from a read that consumed nothing.
type Source interface {
	io.Reader
	io.ByteReader
}

// NewSource adapts r to a Source. Readers that already implement
// io.ByteReader (bufio.Reader, bytes.Reader, ...) are returned as is;
// others are wrapped without any read-ahead, so no bytes past the last
// tag are consumed from r.
func NewSource(r io.Reader) Source {
	if s, ok := r.(Source); ok {
		return s
	}
	return &byteSource{r: r}
}

type byteSource struct {
	r   io.Reader
	buf [1]byte
}

func (s *byteSource) Read(p []byte) (int, error) {
	return s.r.Read(p)
}

func (s *byteSource) ReadByte() (byte, error) {
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		return 0, err
	}
	return s.buf[0], nil
}

// readFull reads exactly n bytes. Large n is read in pieces so a corrupt
// length cannot force a huge allocation up front.
func readFull(r Source, n int) ([]byte, error) {
	const chunk = 1 << 16
	if n <= chunk {
		buf := make([]byte, n)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		return buf, nil
	}
	buf := make([]byte, 0, chunk)
	for len(buf) < n {
		m := min(n-len(buf), chunk)
		start := len(buf)
		buf = append(buf, make([]byte, m)...)
		if _, err := io.ReadFull(r, buf[start:]); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, err
		}
	}
	return buf, nil
}
