package resp

// Reply type tags, the first byte of every reply line.
const (
	TagSimpleString = '+'
	TagError        = '-'
	TagInteger      = ':'
	TagBulkString   = '$'
	TagArray        = '*'
)

// CRLF terminates every line of the protocol, including the line that
// follows a bulk string payload.
const CRLF = "\r\n"

// NullLength is the declared length of a null bulk string or null array.
// Any negative length means null; this is the value written on the wire.
const NullLength = -1

var crlf = []byte(CRLF)
