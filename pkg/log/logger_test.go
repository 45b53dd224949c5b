package log_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/store-dashboard/pkg/log"
)

func TestLogger_Info_WritesFieldsAndContextFields(t *testing.T) {
	var out bytes.Buffer
	logger := log.New(log.LevelInfo, log.WithOutput(&out))

	ctx := logger.WithContext(context.Background(), log.Fields{"requestID": "req-1"})
	logger.With(log.Fields{"role": "manager"}).WithField("userID", "u9").Info(ctx, "session loaded")

	var record map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	assert.Equal(t, "session loaded", record["msg"])
	assert.Equal(t, "req-1", record["requestID"])
	assert.Equal(t, "manager", record["role"])
	assert.Equal(t, "u9", record["userID"])
}

func TestLogger_Debug_SkippedBelowLevel(t *testing.T) {
	var out bytes.Buffer
	logger := log.New(log.LevelWarn, log.WithOutput(&out))

	logger.Debug(context.Background(), "hidden")
	logger.Info(context.Background(), "hidden")

	assert.Empty(t, out.String())
}

func TestParseLevel_Returns(t *testing.T) {
	assert.Equal(t, log.LevelDebug, log.ParseLevel("debug"))
	assert.Equal(t, log.LevelError, log.ParseLevel(" ERROR "))
	assert.Equal(t, log.LevelDisabled, log.ParseLevel("disabled"))
	assert.Equal(t, log.LevelInfo, log.ParseLevel("verbose"))
}
