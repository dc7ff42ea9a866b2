package common

import (
	"bytes"
	"os"
	"testing"
	"time"
)

func TestNewLogger_ReturnsNonNil(t *testing.T) {
	if NewLogger("info") == nil {
		t.Fatal("NewLogger returned nil")
	}
}

func TestNewLogger_FluentAPI(t *testing.T) {
	logger := NewLogger("error")
	logger.Info().Str("path", "/api/portfolio/holdings").Msg("request")
	logger.Warn().Int("issues", 2).Msg("fixture issues")
	logger.Error().Err(nil).Msg("render failed")
	logger.Debug().Dur("elapsed", time.Millisecond).Msg("debug")
}

func TestNewLoggerWithOutput_WritesToProvidedWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerWithOutput("info", &buf)
	logger.Info().Str("key", "value").Msg("hello")

	if buf.Len() == 0 {
		t.Error("expected output to provided writer, got empty string")
	}
}

func TestNewSilentLogger_DoesNotWriteToGlobalWriters(t *testing.T) {
	var buf bytes.Buffer
	_ = NewLoggerWithOutput("info", &buf)
	buf.Reset()

	silent := NewSilentLogger()
	silent.Info().Str("key", "value").Msg("this should not appear")
	silent.Error().Msg("nor this")

	if buf.Len() > 0 {
		t.Errorf("silent logger wrote %d bytes to global writer: %s", buf.Len(), buf.String())
	}
}

func TestNewLogger_DoesNotWriteToStdout(t *testing.T) {
	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	logger := NewLogger("info")
	logger.Info().Msg("console output goes to stderr")

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)
	r.Close()

	if buf.Len() > 0 {
		t.Errorf("logger wrote %d bytes to stdout: %s", buf.Len(), buf.String())
	}
}

func TestWithCorrelationId_ReturnsNewLogger(t *testing.T) {
	logger := NewLogger("info")
	correlated := logger.WithCorrelationId("req-123")

	if correlated == nil {
		t.Fatal("WithCorrelationId returned nil")
	}
	if correlated == logger {
		t.Error("WithCorrelationId should return a new Logger instance")
	}
	correlated.Info().Msg("tagged")
}

func TestMemoryWriter_CollectsEntries(t *testing.T) {
	logger := NewLogger("info")
	logger.Info().Str("tool", "get_holdings").Msg("first message")
	logger.Warn().Msg("second message")

	// arbor's memory writer is async
	time.Sleep(200 * time.Millisecond)

	logs, err := logger.GetMemoryLogsWithLimit(10)
	if err != nil {
		t.Fatalf("GetMemoryLogsWithLimit failed: %v", err)
	}
	if len(logs) == 0 {
		t.Error("expected memory writer to contain log entries")
	}
}
