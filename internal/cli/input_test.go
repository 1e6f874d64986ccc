package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetPasswordUsesGivenPrompt(t *testing.T) {
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("secret123"), nil }
	t.Cleanup(func() { readPassword = orig })

	var buf bytes.Buffer
	pw, err := GetPassword("Confirm password", &buf)
	require.NoError(t, err)
	require.Equal(t, "secret123", pw)
	require.Contains(t, buf.String(), "Confirm password: ")
}

func TestGetSimpleText(t *testing.T) {
	var buf bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello  \n"))

	line, err := GetSimpleText(r, "Say something", &buf)
	require.NoError(t, err)
	require.Equal(t, "hello", line)
	require.Contains(t, buf.String(), "Say something")
}

func TestGetSimpleTextPartialLineAtEOF(t *testing.T) {
	var buf bytes.Buffer
	r := bufio.NewReader(strings.NewReader("no newline"))

	line, err := GetSimpleText(r, "Say something", &buf)
	require.NoError(t, err)
	require.Equal(t, "no newline", line)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Yes", true},
		{"n", false},
		{"", false},
		{"sure", false},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		r := bufio.NewReader(strings.NewReader(tt.answer + "\n"))
		require.Equal(t, tt.want, Confirm(r, "Delete it?", &buf), "answer %q", tt.answer)
	}
}
