// Package redis is a synchronous client for the Redis wire protocol (RESP2).
//
// A Conn is one TCP connection with strictly one command in flight at a
// time: every call blocks until the full reply is decoded or a failure
// occurs. Callers needing concurrency open independent Conns; a Conn is
// never safe to share without external serialization.
//
// The generic entry point is Do, which accepts any command name and
// argument list:
//
//	conn, err := redis.Dial("127.0.0.1:6379", redis.Config{})
//	if err != nil {
//		return err
//	}
//	defer conn.Close()
//
//	reply, err := conn.Do(ctx, "SET", "greeting", "hello")
//	reply, err = conn.Do(ctx, "GET", "greeting")
//	fmt.Println(reply.Text())
//
// Commands whose replies need reshaping have named methods: Info (key:value
// body to map), Keys (tolerates the legacy space-delimited reply), Quit and
// Shutdown (close the connection), Ping.
//
// # Errors
//
// Three kinds, all surfaced immediately with no local recovery:
//
//   - *ConnectionError: socket-level failure. The Conn is dead; dial a new
//     one. Further calls return ErrConnectionClosed.
//   - *resp.ProtocolError: the reply stream did not match the protocol. The
//     Conn may be stopped mid-frame and is also invalidated.
//   - *CommandError: the server answered with an error reply. The Conn
//     stays usable.
//
// # Text encoding
//
// Config.Codec optionally names a golang.org/x/text encoding applied to
// string arguments before framing and to textual reply payloads after
// parsing. Argument lengths on the wire are byte lengths of the converted
// text. With a codec configured, binary payload integrity is not
// guaranteed; pass []byte arguments and read Reply.Bulk to move raw bytes.
package redis
