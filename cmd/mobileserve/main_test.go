package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"

	"github.com/f4ah6o/mobileserve/internal/config"
)

// syncBuffer lets the test read the banner while run is still writing.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRun(t *testing.T) {
	color.NoColor = true
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out syncBuffer
	getenv := func(key string) string {
		if key == "PORT" {
			return "0"
		}
		return ""
	}

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, &out, getenv, zap.NewNop())
	}()

	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(out.String(), "Serving on port") {
		if time.Now().After(deadline) {
			t.Fatalf("banner not printed:\n%s", out.String())
		}
		time.Sleep(10 * time.Millisecond)
	}
	if strings.Contains(out.String(), "Serving on port 0...") {
		t.Errorf("banner should report the bound port:\n%s", out.String())
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run() did not return after cancellation")
	}

	if !strings.HasSuffix(out.String(), "👋 Server stopped\n") {
		t.Errorf("output should end with the shutdown message:\n%s", out.String())
	}
}

func TestRunInvalidPort(t *testing.T) {
	getenv := func(key string) string {
		if key == "PORT" {
			return "not-a-port"
		}
		return ""
	}

	err := run(context.Background(), &bytes.Buffer{}, getenv, zap.NewNop())
	if !errors.Is(err, config.ErrInvalidPort) {
		t.Errorf("run() error = %v, want %v", err, config.ErrInvalidPort)
	}
}
