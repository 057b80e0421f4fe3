package colorio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeverSuppressesEscapes(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewWithWriters(&out, &errOut, Never)

	c.Println(Red, "job %d failed", 42)
	c.EPrint(Green, "ok")

	assert.Equal(t, "job 42 failed\n", out.String())
	assert.Equal(t, "ok", errOut.String())
}

func TestAlwaysEmitsEscapes(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewWithWriters(&out, &errOut, Always)

	c.Print(Yellow, "pending")

	assert.True(t, strings.Contains(out.String(), "\x1b["))
	assert.True(t, strings.Contains(out.String(), "pending"))
}

func TestPlainIsNeverStyled(t *testing.T) {
	var out, errOut bytes.Buffer
	c := NewWithWriters(&out, &errOut, Always)

	c.Println(Plain, "header")

	assert.Equal(t, "header\n", out.String())
}
