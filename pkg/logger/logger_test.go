package logger

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ParsesLevelAndFormat(t *testing.T) {
	logg := New("debug", "text")
	assert.Equal(t, logrus.DebugLevel, logg.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logg.Formatter)

	logg = New("nonsense", "json")
	assert.Equal(t, logrus.InfoLevel, logg.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logg.Formatter)
}

func TestLogError_WritesFields(t *testing.T) {
	logg, hook := test.NewNullLogger()

	LogError(logg, "service", "SubmitExpense", "post line item", map[string]any{"index": 1}, errors.New("boom"))

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "boom", entry.Message)
	assert.Equal(t, "service", entry.Data["module"])
	assert.Equal(t, "SubmitExpense", entry.Data["funcName"])
	assert.Equal(t, map[string]any{"index": 1}, entry.Data["data"])
}

func TestLogError_IgnoresNilError(t *testing.T) {
	logg, hook := test.NewNullLogger()
	LogError(logg, "m", "f", "c", nil, nil)
	assert.Empty(t, hook.Entries)
}
