package textstream

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatFrame(t *testing.T) {
	tests := []struct {
		name     string
		frame    Frame
		expected string
	}{
		{"terminal", Frame{Kind: Terminal, Data: []byte("hi")}, "02hi<\n"},
		{"continuation", Frame{Kind: Continuation, Data: []byte("abcd")}, "04abcd/\n"},
		{"empty terminal", Frame{Kind: Terminal}, "00<\n"},
		{"trailing space", Frame{Kind: Continuation, Data: []byte("ab ")}, "03ab /\n"},
		{"max length", Frame{Kind: Terminal, Data: []byte(strings.Repeat("x", MaxLineSize))}, "fa" + strings.Repeat("x", MaxLineSize) + "<\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := FormatFrame(tt.frame)
			require.Equal(t, tt.expected, string(line))
			require.Equal(t, len(line), tt.frame.Len())
		})
	}
}

func TestFormatFrame_LongestLineFitsTextStream(t *testing.T) {
	line := FormatFrame(Frame{Kind: Continuation, Data: []byte(strings.Repeat("x", MaxLineSize))})
	require.Len(t, line, 254)
}

func TestParseFrame_Valid(t *testing.T) {
	tests := []struct {
		line string
		kind Kind
		data string
	}{
		{"02hi<", Terminal, "hi"},
		{"04abcd/", Continuation, "abcd"},
		{"00<", Terminal, ""},
		{"03a\tb/", Continuation, "a\tb"},
		{"04<<//<", Terminal, "<<//"},
		{"0A0123456789/", Continuation, "0123456789"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			f, err := ParseFrame([]byte(tt.line))
			require.NoError(t, err)
			require.Equal(t, tt.kind, f.Kind)
			require.Equal(t, tt.data, string(f.Data))
		})
	}
}

func TestParseFrame_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		reason string
	}{
		{"empty", "", "too short"},
		{"length only", "00", "too short"},
		{"bad hex", "zzhi<", "invalid length"},
		{"half hex", "0xhi<", "invalid length"},
		{"length exceeds data", "05ab<", "truncated"},
		{"missing marker", "02hi", "truncated"},
		{"bad marker", "02hi>", "invalid marker"},
		{"space marker", "02hi ", "invalid marker"},
		{"garbage after marker", "02hi<x", "after marker"},
		{"length above maximum", "fb" + strings.Repeat("x", 251) + "<", "exceeds maximum"},
		{"newline in data", "03a\nb<", "terminator inside data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFrame([]byte(tt.line))
			require.Error(t, err)
			require.ErrorIs(t, err, ErrMalformedFrame)

			var mfe *MalformedFrameError
			require.True(t, errors.As(err, &mfe))
			require.Contains(t, mfe.Reason, tt.reason)
		})
	}
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "terminal", Terminal.String())
	require.Equal(t, "continuation", Continuation.String())
	require.Equal(t, "kind(7)", Kind(7).String())
	require.Equal(t, byte('<'), Terminal.Marker())
	require.Equal(t, byte('/'), Continuation.Marker())
}

func TestCheckLineSize(t *testing.T) {
	for _, n := range []int{1, 4, 100, MaxLineSize} {
		require.NoError(t, CheckLineSize(n), "n=%d", n)
	}
	for _, n := range []int{-1, 0, MaxLineSize + 1, 1000} {
		err := CheckLineSize(n)
		var cfgErr *ConfigError
		require.True(t, errors.As(err, &cfgErr), "n=%d", n)
		require.Contains(t, err.Error(), "between 1 and 250")
	}
}
