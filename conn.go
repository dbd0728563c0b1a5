package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding"

	"github.com/bjakubski/redis/resp"
)

// Config holds construction-time options for a Conn. The zero value is a
// plain connection: no codec, no tracing.
type Config struct {
	// Codec converts textual arguments to wire bytes before framing and
	// decodes textual reply payloads after parsing. Nil passes text through
	// as UTF-8 unchanged.
	Codec encoding.Encoding

	// Trace logs every command sent and reply received through Logger.
	Trace bool

	// Logger receives trace output. Nil means slog.Default.
	Logger *slog.Logger

	// DialTimeout bounds the TCP connect. Zero means no limit.
	DialTimeout time.Duration
}

// Conn is a single blocking connection to a Redis server. Strictly one
// command is in flight at a time: Do writes the full request frame, then
// blocks until the full reply is decoded. There is no background I/O and no
// internal locking; a Conn shared across goroutines must be serialized by
// the caller.
//
// Any socket or protocol failure leaves the Conn unusable. It never
// reconnects; discard it and dial a new one.
type Conn struct {
	addr   string
	conn   net.Conn
	acc    *resp.Accumulator
	codec  encoding.Encoding
	logger *slog.Logger // nil when tracing is off
	closed bool
}

// Dial connects to a Redis server at addr ("host:port").
func Dial(addr string, config Config) (*Conn, error) {
	return DialContext(context.Background(), addr, config)
}

// DialContext connects to a Redis server at addr, honoring ctx for the
// connect phase only.
func DialContext(ctx context.Context, addr string, config Config) (*Conn, error) {
	dialer := &net.Dialer{Timeout: config.DialTimeout}
	nc, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, &ConnectionError{Op: "dial", Err: err}
	}
	return NewConn(nc, config), nil
}

// NewConn wraps an established net.Conn. It exists for callers that bring
// their own transport (TLS, unix sockets, test doubles); the Conn takes
// exclusive ownership of nc.
func NewConn(nc net.Conn, config Config) *Conn {
	c := &Conn{
		addr:  nc.RemoteAddr().String(),
		conn:  nc,
		acc:   resp.NewAccumulator(nc),
		codec: config.Codec,
	}
	if config.Trace {
		c.logger = config.Logger
		if c.logger == nil {
			c.logger = slog.Default()
		}
	}
	return c
}

// Addr returns the remote address of the connection.
func (c *Conn) Addr() string {
	return c.addr
}

// Do sends an arbitrary command and returns its decoded reply. The name is
// upper-cased on the wire; any command the server understands works, there
// is no client-side command table. Arguments may be string, []byte, int,
// int64, uint64, or nil for an absent value (framed as the null bulk).
//
// A context deadline is applied to the socket for the duration of the call.
// There is no other cancellation: a blocked read ends only with data, a
// deadline, or a socket error.
//
// An error reply from the server comes back as *CommandError and the Conn
// stays usable. *ConnectionError and *resp.ProtocolError both invalidate
// the Conn.
func (c *Conn) Do(ctx context.Context, name string, args ...any) (resp.Reply, error) {
	name = strings.ToUpper(name)
	if err := c.send(ctx, name, args); err != nil {
		return resp.Reply{}, err
	}
	return c.receive(name)
}

// send frames and fully writes one command.
func (c *Conn) send(ctx context.Context, name string, args []any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.closed {
		return ErrConnectionClosed
	}

	elems := make([][]byte, 0, len(args)+1)
	nameBytes, err := c.encodeText(name)
	if err != nil {
		return err
	}
	elems = append(elems, nameBytes)
	for _, arg := range args {
		b, err := c.encodeArg(arg)
		if err != nil {
			return err
		}
		elems = append(elems, b)
	}

	if c.logger != nil {
		c.logger.Debug("redis: send", "addr", c.addr, "command", name, "args", len(args))
	}

	if deadline, ok := ctx.Deadline(); ok {
		c.conn.SetDeadline(deadline)
	} else {
		c.conn.SetDeadline(time.Time{})
	}

	if err := resp.WriteCommand(c.conn, elems...); err != nil {
		c.markClosed()
		return &ConnectionError{Op: "write", Err: err}
	}
	return nil
}

// receive decodes one reply and classifies failures: protocol violations
// and I/O errors invalidate the Conn, server error replies do not.
func (c *Conn) receive(name string) (resp.Reply, error) {
	reply, err := resp.ReadReply(c.acc)
	if err != nil {
		c.markClosed()
		var perr *resp.ProtocolError
		if errors.As(err, &perr) {
			return resp.Reply{}, err
		}
		return resp.Reply{}, &ConnectionError{Op: "read", Err: err}
	}

	if err := c.decodeReply(&reply); err != nil {
		return resp.Reply{}, err
	}

	if reply.IsError() {
		if c.logger != nil {
			c.logger.Debug("redis: error reply", "command", name, "message", reply.Str)
		}
		return resp.Reply{}, &CommandError{Command: name, Message: reply.Str}
	}

	if c.logger != nil {
		c.logger.Debug("redis: recv", "command", name, "type", reply.Type.String())
	}
	return reply, nil
}

// encodeArg converts one argument to its wire bytes. nil stands for an
// absent value and frames as the null bulk, distinct from an empty string.
func (c *Conn) encodeArg(arg any) ([]byte, error) {
	switch v := arg.(type) {
	case nil:
		return nil, nil
	case []byte:
		if v == nil {
			return nil, nil
		}
		return v, nil
	case string:
		return c.encodeText(v)
	case int:
		return []byte(strconv.Itoa(v)), nil
	case int64:
		return []byte(strconv.FormatInt(v, 10)), nil
	case uint64:
		return []byte(strconv.FormatUint(v, 10)), nil
	}
	return nil, fmt.Errorf("redis: unsupported argument type %T", arg)
}

// Close closes the underlying socket. Closing an already-closed Conn is a
// no-op.
func (c *Conn) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.conn.Close()
}

// markClosed invalidates the Conn after a fatal error.
func (c *Conn) markClosed() {
	if c.closed {
		return
	}
	c.closed = true
	c.conn.Close()
}

// IsClosed reports whether the Conn was closed or invalidated.
func (c *Conn) IsClosed() bool {
	return c.closed
}
