package progress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_TTY(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(&buf, "Verifying", 10, true)
	for range 10 {
		p.Step()
	}
	assert.Contains(t, buf.String(), "\rVerifying... 1/10 (10%)")
	assert.Contains(t, buf.String(), "\rVerifying... 10/10 (100%)")

	buf.Reset()
	p.Done()
	assert.Equal(t, "\r"+string(bytes.Repeat([]byte(" "), len("Verifying... 10/10 (100%)")))+"\r", buf.String())
}

func TestProgress_Throttled(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(&buf, "Checking", 1000, true)
	for range 15 {
		p.Step()
	}
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\r")))
	assert.Contains(t, buf.String(), "10/1000")
}

func TestProgress_Silent(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(&buf, "Checking", 100, false)
	p.Step()
	p.Done()
	assert.Empty(t, buf.String())

	small := newProgress(&buf, "Checking", 3, true)
	small.Step()
	small.Done()
	assert.Empty(t, buf.String())
}
