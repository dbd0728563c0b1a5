package resp

import (
	"bytes"
	"io"
	"strconv"
	"sync"
)

// Buffer pool for assembling request frames. A typical command is well under
// 256 bytes.
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 256))
	},
}

// WriteCommand frames elems as a multi-bulk request and writes it to w:
// a *<N> count header, then one $<len>-prefixed segment per element, CRLF
// terminated throughout. Element 0 is conventionally the command name.
//
// A nil element encodes as the null bulk ($-1 with no payload line), which
// the wire keeps distinct from a zero-length element. Lengths are byte
// lengths, so multi-byte text must be converted to bytes before framing.
//
// The frame is assembled in full and written as one logical unit, looping
// until every byte is delivered; a short write is only ever "write the
// remainder", never completion.
func WriteCommand(w io.Writer, elems ...[]byte) error {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	buf.WriteByte(TagArray)
	buf.WriteString(strconv.Itoa(len(elems)))
	buf.WriteString(CRLF)

	for _, elem := range elems {
		buf.WriteByte(TagBulkString)
		if elem == nil {
			buf.WriteString(strconv.Itoa(NullLength))
			buf.WriteString(CRLF)
			continue
		}
		buf.WriteString(strconv.Itoa(len(elem)))
		buf.WriteString(CRLF)
		buf.Write(elem)
		buf.WriteString(CRLF)
	}

	data := buf.Bytes()
	for len(data) > 0 {
		n, err := w.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}
