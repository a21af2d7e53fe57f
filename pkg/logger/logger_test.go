package logger

import (
	"context"
	"testing"
	"time"
)

func TestInitAndContextLogging(t *testing.T) {
	Init("development")
	if GetLogger() == nil {
		t.Fatal("expected logger initialized")
	}

	ctx := context.WithValue(context.Background(), "request_id", "req-1")
	Info(ctx, "info message")
	Debug(ctx, "debug message")
	Warn(ctx, "warn message")
	Error(ctx, "error message")
	LogRequest(ctx, "GET", "/api/team", 200, 5*time.Millisecond, "127.0.0.1")

	if WithContext(nil) == nil {
		t.Fatal("nil context should still return a logger")
	}

	typed := context.WithValue(context.Background(), RequestIDKey, "req-2")
	if WithContext(typed) == nil {
		t.Fatal("typed key context should return a logger")
	}
}
