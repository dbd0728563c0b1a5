package redis

import (
	"github.com/bjakubski/redis/resp"
)

// encodeText converts a textual argument to wire bytes through the
// configured codec. Frame lengths are computed from the converted bytes, so
// multi-byte encodings stay correctly sized. The result is never nil: an
// empty string frames as a zero-length element, not a null.
func (c *Conn) encodeText(s string) ([]byte, error) {
	if c.codec == nil {
		return append([]byte{}, s...), nil
	}
	b, err := c.codec.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// decodeReply runs the textual payloads of r through the codec, in place,
// recursing into arrays. The wire does not distinguish text from binary, so
// a configured codec trades binary payload integrity for transparent text
// handling; callers moving raw bytes should leave the codec unset.
func (c *Conn) decodeReply(r *resp.Reply) error {
	if c.codec == nil {
		return nil
	}
	switch r.Type {
	case resp.SimpleString, resp.Error:
		s, err := c.codec.NewDecoder().String(r.Str)
		if err != nil {
			return err
		}
		r.Str = s
	case resp.BulkString:
		if r.Bulk == nil {
			return nil
		}
		b, err := c.codec.NewDecoder().Bytes(r.Bulk)
		if err != nil {
			return err
		}
		r.Bulk = b
	case resp.Array:
		for i := range r.Elems {
			if err := c.decodeReply(&r.Elems[i]); err != nil {
				return err
			}
		}
	}
	return nil
}
