package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func TestGetSimpleText(t *testing.T) {
	var w bytes.Buffer
	got, err := GetSimpleText(readerFromLines("  hello world  "), "Say something", &w)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Say something\n> ", w.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var w bytes.Buffer
	got, err := GetSimpleText(bufio.NewReader(strings.NewReader("partial")), "p", &w)
	require.NoError(t, err)
	assert.Equal(t, "partial", got)

	_, err = GetSimpleText(bufio.NewReader(strings.NewReader("")), "p", &w)
	require.Error(t, err)
}

func TestGetConfirmation(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{answer: "y", want: true},
		{answer: "YES", want: true},
		{answer: " yes ", want: true},
		{answer: "", want: false},
		{answer: "n", want: false},
		{answer: "sure", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			var w bytes.Buffer
			assert.Equal(t, tt.want, GetConfirmation(readerFromLines(tt.answer), "Delete?", &w))
			assert.Contains(t, w.String(), "Delete? [y/N]")
		})
	}

	var w bytes.Buffer
	assert.False(t, GetConfirmation(bufio.NewReader(strings.NewReader("")), "Delete?", &w), "EOF means no")
}

func TestArgOrPrompt(t *testing.T) {
	var w bytes.Buffer

	got, err := argOrPrompt(readerFromLines("unused"), []string{"asics", "spike"}, "Keyword", &w)
	require.NoError(t, err)
	assert.Equal(t, "asics spike", got)
	assert.Empty(t, w.String(), "no prompt when args are given")

	got, err = argOrPrompt(readerFromLines("nike"), nil, "Keyword", &w)
	require.NoError(t, err)
	assert.Equal(t, "nike", got)

	_, err = argOrPrompt(readerFromLines(""), nil, "Keyword", &w)
	require.ErrorIs(t, err, errNoInput)
}

func TestParseID(t *testing.T) {
	id, err := parseID("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	id, err = parseID("#7")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	for _, bad := range []string{"", "0", "-3", "abc", "1.5"} {
		_, err := parseID(bad)
		assert.Error(t, err, bad)
	}
}
