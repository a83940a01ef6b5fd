package common

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "liyu1981.xyz/factory-monitor-service/pkg/testing"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

func TestCategoryLogger(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	GetCategoryLogger(LoggerNameScheduler, LoggerCategoryTick).Info("tick done")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "scheduler", entry["logger"])
	assert.Equal(t, "tick", entry["category"])
	assert.Equal(t, "tick done", entry["msg"])
}

func TestFilterMapperReducer(t *testing.T) {
	values := []int{1, 2, 3, 4, 5}

	even := Filter(values, func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)

	none := Filter(values, func(v int) bool { return v > 10 })
	assert.NotNil(t, none)
	assert.Empty(t, none)

	doubled := Mapper(values, func(v int) int { return v * 2 })
	assert.Equal(t, []int{2, 4, 6, 8, 10}, doubled)

	sum := Reducer(values, func(acc int, v int) int { return acc + v }, 0)
	assert.Equal(t, 15, sum)
}
