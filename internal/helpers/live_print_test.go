package helpers

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiveLogger(t *testing.T) {
	out := &bytes.Buffer{}
	l := NewLiveLoggerTo(out)
	l.SetFooter("a", 0)
	l.Println("1")
	l.SetFooter("ab", 1)
	l.Println("12")

	assert.Equal(t, "a\nab", l.FooterString())
	assert.True(t, strings.Contains(out.String(), "12\n"))
	assert.True(t, strings.HasSuffix(out.String(), "a\nab\n"))
}

func TestFooterLogger(t *testing.T) {
	out := &bytes.Buffer{}
	l := NewLiveLoggerTo(out)
	footer := NewFooterLogger(l, 2)
	footer.Printf("score %v", 3)

	assert.Equal(t, "\n\nscore 3", l.FooterString())
}

func TestWrapLine(t *testing.T) {
	assert.Equal(t, "aaa bbb", wrapLine("aaa bbb", 20))
	assert.Equal(t, "aaa\nbbb", wrapLine("aaa bbb", 5))
	assert.Equal(t, 3, runeCountIgnoringAnsi("\033[38;5;244mabc\x1b[0m"))
}
