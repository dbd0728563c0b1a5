package testutils

import (
	"bytes"
	"io"
	"net"
	"strings"
	"time"
)

// ConnectionMock is a scripted net.Conn for testing: the read side serves
// pre-loaded server replies and the write side records the request frames
// the client sent.
type ConnectionMock struct {
	readBuf  *bytes.Buffer
	writeBuf *bytes.Buffer
	closed   bool

	// MaxRead, when positive, caps how many bytes each Read call returns.
	// Set to 1 to simulate maximal TCP fragmentation.
	MaxRead int
}

// NewConnectionMock creates a mock connection that will serve the given
// replies, concatenated, as its read stream.
func NewConnectionMock(replies ...string) *ConnectionMock {
	return &ConnectionMock{
		readBuf:  bytes.NewBufferString(strings.Join(replies, "")),
		writeBuf: &bytes.Buffer{},
	}
}

func (m *ConnectionMock) Read(b []byte) (int, error) {
	if m.closed {
		return 0, io.EOF
	}
	if m.MaxRead > 0 && len(b) > m.MaxRead {
		b = b[:m.MaxRead]
	}
	return m.readBuf.Read(b)
}

func (m *ConnectionMock) Write(b []byte) (int, error) {
	if m.closed {
		return 0, net.ErrClosed
	}
	return m.writeBuf.Write(b)
}

func (m *ConnectionMock) Close() error {
	m.closed = true
	return nil
}

// Written returns everything the client wrote so far.
func (m *ConnectionMock) Written() []byte {
	return m.writeBuf.Bytes()
}

// Closed reports whether Close was called.
func (m *ConnectionMock) Closed() bool {
	return m.closed
}

func (m *ConnectionMock) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 0}
}

func (m *ConnectionMock) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 6379}
}

func (m *ConnectionMock) SetDeadline(t time.Time) error      { return nil }
func (m *ConnectionMock) SetReadDeadline(t time.Time) error  { return nil }
func (m *ConnectionMock) SetWriteDeadline(t time.Time) error { return nil }
