package resp

import (
	"fmt"
	"strconv"
)

// maxReplyDepth bounds array nesting. The protocol itself allows arbitrary
// nesting, so the limit exists only to turn corrupt or hostile input into a
// ProtocolError instead of unbounded stack growth.
const maxReplyDepth = 512

// arrayCapHint caps the element capacity allocated up front for an array
// reply, so a corrupt count cannot force a huge allocation before the
// elements fail to parse.
const arrayCapHint = 4096

// ReadReply decodes one complete reply from acc, pulling more bytes from the
// underlying stream as needed. It consumes exactly the bytes the type tag
// and declared lengths specify, leaving acc at the start of the next frame.
//
// Error replies (the '-' tag) are returned as a normal Reply with Type
// Error; surfacing them as failures is the caller's job.
func ReadReply(acc *Accumulator) (Reply, error) {
	return readReply(acc, 0)
}

func readReply(acc *Accumulator, depth int) (Reply, error) {
	if depth > maxReplyDepth {
		return Reply{}, &ProtocolError{Message: "reply nesting exceeds " + strconv.Itoa(maxReplyDepth) + " levels"}
	}

	line, err := acc.ReadLine()
	if err != nil {
		return Reply{}, err
	}
	if len(line) == 0 {
		return Reply{}, &ProtocolError{Message: "empty reply line"}
	}

	tag, payload := line[0], line[1:]
	switch tag {
	case TagSimpleString:
		return Reply{Type: SimpleString, Str: string(payload)}, nil

	case TagError:
		return Reply{Type: Error, Str: string(payload)}, nil

	case TagInteger:
		n, err := strconv.ParseInt(string(payload), 10, 64)
		if err != nil {
			return Reply{}, &ProtocolError{Message: "malformed integer reply " + strconv.Quote(string(payload)), Err: err}
		}
		return Reply{Type: Integer, Int: n}, nil

	case TagBulkString:
		length, err := parseLength(payload, "bulk string length")
		if err != nil {
			return Reply{}, err
		}
		if length < 0 {
			return Reply{Type: BulkString, Null: true}, nil
		}
		body, err := acc.ReadExact(length)
		if err != nil {
			return Reply{}, err
		}
		// body aliases the accumulator, copy it out
		bulk := make([]byte, length)
		copy(bulk, body)
		return Reply{Type: BulkString, Bulk: bulk}, nil

	case TagArray:
		count, err := parseLength(payload, "array count")
		if err != nil {
			return Reply{}, err
		}
		if count < 0 {
			return Reply{Type: Array, Null: true}, nil
		}
		elems := make([]Reply, 0, min(count, arrayCapHint))
		for i := 0; i < count; i++ {
			elem, err := readReply(acc, depth+1)
			if err != nil {
				return Reply{}, err
			}
			elems = append(elems, elem)
		}
		return Reply{Type: Array, Elems: elems}, nil
	}

	return Reply{}, &ProtocolError{Message: fmt.Sprintf("unknown reply tag %q with payload %q", tag, payload)}
}

func parseLength(payload []byte, kind string) (int, error) {
	length, err := strconv.Atoi(string(payload))
	if err != nil {
		return 0, &ProtocolError{Message: "malformed " + kind + " " + strconv.Quote(string(payload)), Err: err}
	}
	return length, nil
}
