package lineno

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	lines := []Line{{Number: 5, Text: "E"}, {Number: 4, Text: "D"}, {Number: 12, Text: ""}}
	tests := []struct {
		name     string
		numbered bool
		expect   string
	}{
		{name: "plain", expect: "E\nD\n\n"},
		{name: "numbered", numbered: true, expect: "5\tE\n4\tD\n12\t\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b bytes.Buffer
			require.NoError(t, Print(&b, lines, tt.numbered))
			assert.Equal(t, tt.expect, b.String())
		})
	}
}

func TestPrintEmpty(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, Print(&b, nil, true))
	assert.Empty(t, b.String())
}

type errWriter struct{ err error }

func (w errWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestPrintWriteError(t *testing.T) {
	boom := errors.New("boom")
	err := Print(errWriter{boom}, []Line{{Number: 1, Text: "A"}}, false)
	assert.ErrorIs(t, err, boom)
}
