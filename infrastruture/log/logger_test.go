package log

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/vinom-solver/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("nil writer", func(t *testing.T) {
		_, err := New("APP", config.ColorGreen, nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})

	t.Run("levels", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("SOLVER", config.ColorCyan, &buf)
		require.NoError(t, err)

		l.Info("ready")
		assert.Contains(t, buf.String(), config.ColorCyan+"[SOLVER]"+config.ColorReset)
		assert.Contains(t, buf.String(), config.LogInfoColor+"[INFO]"+config.LogColorReset+" ready")

		buf.Reset()
		l.Warning("cache down")
		assert.Contains(t, buf.String(), "[WARNING]"+config.LogColorReset+" cache down")

		buf.Reset()
		l.Error("boom")
		assert.Contains(t, buf.String(), config.LogErrorColor+"[ERROR]")
	})
}
