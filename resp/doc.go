// Package resp implements the RESP2 wire protocol spoken by Redis servers:
// request framing, reply parsing, and the read-side buffering that turns a
// TCP byte stream back into whole protocol messages.
//
// This package serves as the foundation for the client in the parent
// package. It carries no connection management and no command knowledge,
// only serialization and parsing.
//
// # Requests
//
// WriteCommand frames a command name and its arguments as a multi-bulk
// request, each element length-prefixed:
//
//	err := resp.WriteCommand(conn, []byte("SET"), []byte("k"), []byte("v"))
//
// A nil element is framed as the null bulk ($-1), distinct from an empty
// element ($0).
//
// # Replies
//
// ReadReply decodes exactly one reply from an Accumulator, recursing into
// array replies:
//
//	acc := resp.NewAccumulator(conn)
//	reply, err := resp.ReadReply(acc)
//
// The five reply variants map onto the Reply struct, selected by its Type:
// SimpleString ('+'), Error ('-'), Integer (':'), BulkString ('$', nullable)
// and Array ('*', nullable, recursive). A byte stream that matches none of
// them produces a *ProtocolError; after one, the stream position is
// undefined and the connection must be discarded.
//
// # Buffering
//
// Accumulator is the single point where stream fragmentation is absorbed.
// It reads the source in chunks, hands out exact lines and exact-length
// payloads, and keeps leftover bytes for the next call, so a reply split
// across any number of socket reads parses identically to one that arrived
// whole.
package resp
