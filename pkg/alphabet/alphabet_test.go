package alphabet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		b     byte
		class Class
	}{
		{'a', Graphic},
		{'~', Graphic},
		{'!', Graphic},
		{'<', Graphic},
		{' ', Space},
		{'\t', Tab},
		{'\n', Newline},
		{'\r', Invalid},
		{0x00, Invalid},
		{0x7f, Invalid},
		{0xff, Invalid},
		{'\v', Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.class.String(), func(t *testing.T) {
			require.Equal(t, tt.class, Classify(tt.b), "byte 0x%02x", tt.b)
		})
	}
}

func TestIsData(t *testing.T) {
	require.True(t, IsData('x'))
	require.True(t, IsData(' '))
	require.True(t, IsData('\t'))
	require.False(t, IsData('\n'))
	require.False(t, IsData('\r'))
	require.False(t, IsData(0x80))
}

func TestLineSafe(t *testing.T) {
	tests := []struct {
		name string
		line string
		safe bool
	}{
		{"empty", "", true},
		{"frame", "02hi<", true},
		{"inner whitespace", "04a \tb/", true},
		{"trailing space", "02hi ", false},
		{"trailing tab", "02hi\t", false},
		{"newline", "02h\n<", false},
		{"carriage return", "02hi<\r", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.safe, LineSafe([]byte(tt.line)))
		})
	}
}

func TestChecker_Valid(t *testing.T) {
	c := NewChecker()
	c.Analyze([]byte("hello world\n\tindented\n"))
	c.Analyze([]byte("tail"))

	report := c.Report()
	require.True(t, report.Valid())
	require.Nil(t, report.First)
	require.Equal(t, int64(26), report.Bytes)
	require.Equal(t, int64(2), report.Lines)
	require.Equal(t, 11, report.LongestLine)
	require.Zero(t, report.TrailingSpace)
}

func TestChecker_Invalid(t *testing.T) {
	c := NewChecker()
	_, err := c.Write([]byte("ok\nbad\r\n"))
	require.NoError(t, err)
	_, err = c.Write([]byte{0x00, '\n'})
	require.NoError(t, err)

	report := c.Report()
	require.False(t, report.Valid())
	require.Equal(t, int64(2), report.Invalid)
	require.NotNil(t, report.First)
	require.Equal(t, Violation{Offset: 6, Line: 2, Byte: '\r'}, *report.First)
	require.Equal(t, "byte 0x0d at offset 6 (line 2)", report.First.String())
}

func TestChecker_TrailingSpace(t *testing.T) {
	c := NewChecker()
	c.Analyze([]byte("a \nb\t\nc\n \n"))

	report := c.Report()
	require.True(t, report.Valid())
	require.Equal(t, int64(3), report.TrailingSpace)
}

func TestChecker_ReportIsACopy(t *testing.T) {
	c := NewChecker()
	c.Analyze([]byte{0x01})
	report := c.Report()
	report.First.Byte = 'x'

	require.Equal(t, byte(0x01), c.Report().First.Byte)
}
