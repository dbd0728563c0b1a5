package resp

import (
	"bytes"
	"io"
)

// readChunkSize is how many bytes each refill asks the source for.
const readChunkSize = 8 * 1024

// Accumulator buffers bytes read from a stream until a whole logical unit is
// available: a CRLF-terminated line, or an exact-length payload. Bytes past
// the consumed unit stay buffered for the next call, so decoding stays
// byte-accurate no matter how the stream fragments the frames.
//
// This is the only place stream-to-message translation happens; everything
// above it operates on whole lines and whole payloads. An Accumulator is
// owned by exactly one connection and is not safe for concurrent use.
type Accumulator struct {
	src     io.Reader
	buf     []byte
	scratch [readChunkSize]byte
}

// NewAccumulator returns an Accumulator reading from src.
func NewAccumulator(src io.Reader) *Accumulator {
	return &Accumulator{src: src}
}

// Buffered returns the number of bytes read from the source but not yet
// consumed.
func (a *Accumulator) Buffered() int {
	return len(a.buf)
}

// ReadLine consumes and returns the next CRLF-terminated line without the
// terminator. It blocks reading the source until a full line has arrived.
// The returned slice is only valid until the next Accumulator call.
func (a *Accumulator) ReadLine() ([]byte, error) {
	for {
		if i := bytes.Index(a.buf, crlf); i >= 0 {
			line := a.buf[:i]
			a.buf = a.buf[i+len(crlf):]
			return line, nil
		}
		if err := a.fill(); err != nil {
			return nil, err
		}
	}
}

// ReadExact consumes exactly n payload bytes plus the trailing CRLF and
// returns the payload, blocking until all n+2 bytes have arrived. A payload
// not followed by CRLF is a framing violation. The returned slice is only
// valid until the next Accumulator call.
func (a *Accumulator) ReadExact(n int) ([]byte, error) {
	for len(a.buf) < n+len(crlf) {
		if err := a.fill(); err != nil {
			return nil, err
		}
	}
	if !bytes.Equal(a.buf[n:n+len(crlf)], crlf) {
		return nil, &ProtocolError{Message: "payload not terminated by CRLF"}
	}
	payload := a.buf[:n]
	a.buf = a.buf[n+len(crlf):]
	return payload, nil
}

// fill appends one chunk from the source. A read that yields no bytes means
// the peer went away mid-frame; a half-received frame is never treated as
// complete.
func (a *Accumulator) fill() error {
	n, err := a.src.Read(a.scratch[:])
	if n > 0 {
		a.buf = append(a.buf, a.scratch[:n]...)
		return nil
	}
	if err == nil || err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}
