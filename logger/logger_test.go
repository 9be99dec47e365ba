package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("prod", &buf)
	l.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Info().Str("component", "test").Msg("shown")
	assert.Contains(t, buf.String(), `"component":"test"`)

	buf.Reset()
	dl := NewWithWriter("dev", &buf)
	dl.Debug().Msg("visible")
	assert.Contains(t, buf.String(), `"level":"debug"`)
}
