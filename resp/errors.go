package resp

// ProtocolError reports a reply stream that does not match the protocol
// grammar: an unknown type tag, a malformed length or integer, or a payload
// not terminated where its declared length says it ends.
//
// The stream that produced it may be stopped mid-frame, so the connection it
// came from must be treated as unusable.
type ProtocolError struct {
	Message string
	Err     error // underlying error, if any
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return "resp: " + e.Message + ": " + e.Err.Error()
	}
	return "resp: " + e.Message
}

// Unwrap returns the underlying error for error chain inspection.
func (e *ProtocolError) Unwrap() error {
	return e.Err
}
