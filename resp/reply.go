package resp

import "strconv"

// Type identifies which protocol variant a Reply holds.
type Type byte

const (
	SimpleString Type = TagSimpleString
	Error        Type = TagError
	Integer      Type = TagInteger
	BulkString   Type = TagBulkString
	Array        Type = TagArray
)

func (t Type) String() string {
	switch t {
	case SimpleString:
		return "simple string"
	case Error:
		return "error"
	case Integer:
		return "integer"
	case BulkString:
		return "bulk string"
	case Array:
		return "array"
	}
	return "unknown(" + strconv.Itoa(int(t)) + ")"
}

// Reply is one fully parsed server reply. Exactly one variant is populated,
// selected by Type. BulkString and Array are nullable: a reply declared with
// a negative length has Null set and no payload, which is distinct from an
// empty payload.
type Reply struct {
	Type  Type
	Str   string  // SimpleString and Error text
	Int   int64   // Integer value
	Bulk  []byte  // BulkString payload, nil when Null
	Elems []Reply // Array elements in wire order, nil when Null
	Null  bool    // bulk string or array declared with a negative length
}

// IsNull reports whether the reply is a null bulk string or null array.
func (r Reply) IsNull() bool {
	return r.Null
}

// IsError reports whether the server answered with an error reply.
func (r Reply) IsError() bool {
	return r.Type == Error
}

// Text returns the textual payload of the reply: the line text for
// SimpleString and Error, the body for BulkString, and the decimal form for
// Integer. Null and array replies return "".
func (r Reply) Text() string {
	switch r.Type {
	case SimpleString, Error:
		return r.Str
	case Integer:
		return strconv.FormatInt(r.Int, 10)
	case BulkString:
		return string(r.Bulk)
	}
	return ""
}

// List returns the array elements. Null arrays and non-array replies return
// an empty slice, so callers can range without checking Null first.
func (r Reply) List() []Reply {
	if r.Type != Array {
		return nil
	}
	return r.Elems
}
