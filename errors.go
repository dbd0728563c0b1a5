package redis

import (
	"errors"
	"fmt"
)

// ErrConnectionClosed is returned when a command is issued on a Conn that
// was closed, or that an earlier failure left unusable.
var ErrConnectionClosed = errors.New("redis: connection closed")

// ConnectionError wraps an I/O failure on the underlying socket: connect
// failure, write failure, or the peer closing mid-reply. It is fatal to the
// Conn; no retry or reconnect is attempted, the caller must discard the Conn
// and dial a new one.
type ConnectionError struct {
	Op  string // operation that failed: "dial", "write", "read"
	Err error  // underlying error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("redis: connection error during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// CommandError carries an error reply the server returned for one command.
// The connection itself is still usable; only the command that triggered
// the reply failed.
type CommandError struct {
	Command string // upper-cased command name that triggered the error
	Message string // the server's error line, e.g. "ERR wrong type"
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("redis: %s: %s", e.Command, e.Message)
}
