package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver_Success(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelInfo)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "send-message",
		Duration: 12 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"sender": "user"},
	})

	out := buf.String()
	assert.Contains(t, out, "msg=service_use_case")
	assert.Contains(t, out, "use_case=send-message")
	assert.Contains(t, out, "duration_ms=12")
	assert.Contains(t, out, "success=true")
	assert.Contains(t, out, "sender=user")
	assert.Contains(t, out, "level=INFO")
}

func TestLogUseCaseObserver_FailureLogsError(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelInfo)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "import-simulations", Err: errors.New("boom")})

	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestLogUseCaseObserver_LevelFiltersInfo(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf, slog.LevelWarn)

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "progress", Success: true})
	assert.Empty(t, buf.String())
}

func TestNewLogUseCaseObserver_NilWriter(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil, slog.LevelInfo))
}

type recordingObserver struct {
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.events = append(r.events, e)
}

func TestUseCaseObserverOrNoop(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, useCaseObserverOrNoop(nil))
	rec := &recordingObserver{}
	assert.Same(t, rec, useCaseObserverOrNoop([]UseCaseObserver{nil, rec}))
}
