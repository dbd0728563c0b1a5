package resp

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// oneByteReader forces one byte per Read call, the worst possible stream
// fragmentation.
type oneByteReader struct {
	r io.Reader
}

func (o oneByteReader) Read(p []byte) (int, error) {
	return o.r.Read(p[:1])
}

func TestReadReply(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Reply
	}{
		{
			name:  "simple string",
			input: "+OK\r\n",
			want:  Reply{Type: SimpleString, Str: "OK"},
		},
		{
			name:  "empty simple string",
			input: "+\r\n",
			want:  Reply{Type: SimpleString},
		},
		{
			name:  "error reply",
			input: "-ERR wrong type\r\n",
			want:  Reply{Type: Error, Str: "ERR wrong type"},
		},
		{
			name:  "integer",
			input: ":1000\r\n",
			want:  Reply{Type: Integer, Int: 1000},
		},
		{
			name:  "negative integer",
			input: ":-1\r\n",
			want:  Reply{Type: Integer, Int: -1},
		},
		{
			name:  "bulk string",
			input: "$5\r\nhello\r\n",
			want:  Reply{Type: BulkString, Bulk: []byte("hello")},
		},
		{
			name:  "empty bulk string",
			input: "$0\r\n\r\n",
			want:  Reply{Type: BulkString, Bulk: []byte{}},
		},
		{
			name:  "null bulk string",
			input: "$-1\r\n",
			want:  Reply{Type: BulkString, Null: true},
		},
		{
			name:  "bulk string containing CRLF",
			input: "$12\r\nline1\r\nline2\r\n",
			want:  Reply{Type: BulkString, Bulk: []byte("line1\r\nline2")},
		},
		{
			name:  "empty array",
			input: "*0\r\n",
			want:  Reply{Type: Array, Elems: []Reply{}},
		},
		{
			name:  "null array",
			input: "*-1\r\n",
			want:  Reply{Type: Array, Null: true},
		},
		{
			name:  "array of bulk strings",
			input: "*3\r\n$4\r\nkey1\r\n$4\r\nkey2\r\n$4\r\nkey3\r\n",
			want: Reply{Type: Array, Elems: []Reply{
				{Type: BulkString, Bulk: []byte("key1")},
				{Type: BulkString, Bulk: []byte("key2")},
				{Type: BulkString, Bulk: []byte("key3")},
			}},
		},
		{
			name:  "mixed nested array",
			input: "*4\r\n:7\r\n$-1\r\n*2\r\n+one\r\n:2\r\n$3\r\nend\r\n",
			want: Reply{Type: Array, Elems: []Reply{
				{Type: Integer, Int: 7},
				{Type: BulkString, Null: true},
				{Type: Array, Elems: []Reply{
					{Type: SimpleString, Str: "one"},
					{Type: Integer, Int: 2},
				}},
				{Type: BulkString, Bulk: []byte("end")},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadReply(NewAccumulator(strings.NewReader(tt.input)))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})

		// Decoding must not depend on how the stream fragments.
		t.Run(tt.name+" one byte per read", func(t *testing.T) {
			got, err := ReadReply(NewAccumulator(oneByteReader{strings.NewReader(tt.input)}))
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReadReplyNullDistinctFromEmpty(t *testing.T) {
	null, err := ReadReply(NewAccumulator(strings.NewReader("$-1\r\n")))
	require.NoError(t, err)
	empty, err := ReadReply(NewAccumulator(strings.NewReader("$0\r\n\r\n")))
	require.NoError(t, err)

	require.True(t, null.IsNull())
	require.False(t, empty.IsNull())
	require.NotEqual(t, null, empty)
}

func TestReadReplyErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		message string
	}{
		{
			name:    "unknown tag",
			input:   "?bogus\r\n",
			message: `unknown reply tag '?' with payload "bogus"`,
		},
		{
			name:    "empty line",
			input:   "\r\n",
			message: "empty reply line",
		},
		{
			name:    "malformed integer",
			input:   ":twelve\r\n",
			message: `malformed integer reply "twelve"`,
		},
		{
			name:    "malformed bulk length",
			input:   "$five\r\nhello\r\n",
			message: `malformed bulk string length "five"`,
		},
		{
			name:    "malformed array count",
			input:   "*x\r\n",
			message: `malformed array count`,
		},
		{
			name:    "bulk payload overruns declared length",
			input:   "$3\r\nhello\r\n",
			message: "payload not terminated by CRLF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadReply(NewAccumulator(strings.NewReader(tt.input)))
			var perr *ProtocolError
			require.ErrorAs(t, err, &perr)
			require.Contains(t, perr.Error(), tt.message)
		})
	}
}

func TestReadReplyTruncatedStream(t *testing.T) {
	// Streams that end mid-frame must fail, never parse as complete.
	inputs := []string{
		"",
		"+OK",
		"+OK\r",
		"$5\r\nhel",
		"$5\r\nhello",
		"*2\r\n:1\r\n",
	}

	for _, input := range inputs {
		_, err := ReadReply(NewAccumulator(strings.NewReader(input)))
		require.ErrorIs(t, err, io.ErrUnexpectedEOF, "input %q", input)
	}
}

func TestReadReplyDepthLimit(t *testing.T) {
	input := strings.Repeat("*1\r\n", maxReplyDepth+2) + ":1\r\n"

	_, err := ReadReply(NewAccumulator(strings.NewReader(input)))
	var perr *ProtocolError
	require.ErrorAs(t, err, &perr)
	require.Contains(t, perr.Error(), "nesting")
}

func TestReadReplyLeavesStreamAtFrameBoundary(t *testing.T) {
	acc := NewAccumulator(strings.NewReader("$5\r\nhello\r\n:42\r\n+OK\r\n"))

	first, err := ReadReply(acc)
	require.NoError(t, err)
	require.Equal(t, Reply{Type: BulkString, Bulk: []byte("hello")}, first)

	second, err := ReadReply(acc)
	require.NoError(t, err)
	require.Equal(t, Reply{Type: Integer, Int: 42}, second)

	third, err := ReadReply(acc)
	require.NoError(t, err)
	require.Equal(t, Reply{Type: SimpleString, Str: "OK"}, third)
}
