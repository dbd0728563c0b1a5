package redis

import (
	"context"
	"strings"

	"github.com/bjakubski/redis/resp"
)

// Everything here is a thin layer over Do. The generic call path needs no
// per-command knowledge; only the commands whose replies need reshaping, or
// that change connection state, get a named method.

// Ping checks that the server is reachable and responding.
func (c *Conn) Ping(ctx context.Context) error {
	_, err := c.Do(ctx, "PING")
	return err
}

// Quit tells the server to close the session and closes the local socket.
// The Conn is unusable afterwards; no reply is read, since the server may
// drop the connection before answering.
func (c *Conn) Quit(ctx context.Context) error {
	err := c.send(ctx, "QUIT", nil)
	cerr := c.Close()
	if err != nil {
		return err
	}
	return cerr
}

// Shutdown asks the server to stop. A successful shutdown produces no reply
// at all, the server just exits, so like Quit this only sends and closes.
func (c *Conn) Shutdown(ctx context.Context) error {
	err := c.send(ctx, "SHUTDOWN", nil)
	cerr := c.Close()
	if err != nil {
		return err
	}
	return cerr
}

// Info returns the server's status report reshaped into key/value pairs.
// The raw reply is a single text body of line-delimited "key:value" pairs;
// blank lines and comment lines are skipped.
func (c *Conn) Info(ctx context.Context) (map[string]string, error) {
	reply, err := c.Do(ctx, "INFO")
	if err != nil {
		return nil, err
	}

	info := make(map[string]string)
	for _, line := range strings.Split(reply.Text(), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		info[key] = value
	}
	return info, nil
}

// Keys lists the key names matching pattern. Servers answer with an array
// of individual keys, except for pre-1.2 ones which send a single
// space-delimited string of all names; both shapes come back as a plain
// slice of keys.
func (c *Conn) Keys(ctx context.Context, pattern string) ([]string, error) {
	reply, err := c.Do(ctx, "KEYS", pattern)
	if err != nil {
		return nil, err
	}

	switch reply.Type {
	case resp.Array:
		keys := make([]string, 0, len(reply.Elems))
		for _, elem := range reply.List() {
			keys = append(keys, elem.Text())
		}
		return keys, nil
	case resp.BulkString, resp.SimpleString:
		return strings.Fields(reply.Text()), nil
	}
	return nil, &resp.ProtocolError{Message: "unexpected KEYS reply of type " + reply.Type.String()}
}
