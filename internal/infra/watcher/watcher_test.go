package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRun_CallsOnChangeOncePerBurst(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "data.csv")
	other := filepath.Join(dir, "other.csv")
	if err := os.WriteFile(target, []byte("a\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	called := make(chan struct{}, 8)
	done := make(chan error, 1)

	w := New(target, WithDebounce(100*time.Millisecond))
	go func() {
		done <- w.Run(ctx, func(context.Context) error {
			calls.Add(1)
			called <- struct{}{}
			return nil
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(200 * time.Millisecond)

	if err := os.WriteFile(other, []byte("ignored\n"), 0o644); err != nil {
		t.Fatalf("write other: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(target, []byte("b\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	select {
	case <-called:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for onChange")
	}

	// Let any stray timer fire before counting.
	time.Sleep(400 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Fatalf("expected 1 call for one burst, got %d", n)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestRun_CallbackErrorDoesNotStopLoop(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(target, []byte("a\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	called := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- New(target, WithDebounce(50*time.Millisecond)).Run(ctx, func(context.Context) error {
			called <- struct{}{}
			return errors.New("boom")
		})
	}()
	time.Sleep(200 * time.Millisecond)

	for round := 0; round < 2; round++ {
		if err := os.WriteFile(target, []byte("x\n"), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		select {
		case <-called:
		case <-time.After(5 * time.Second):
			t.Fatalf("round %d: timed out waiting for onChange", round)
		}
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestRun_MissingDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "nope", "data.csv")
	err := New(target).Run(context.Background(), func(context.Context) error { return nil })
	if err == nil {
		t.Fatal("expected error for missing directory")
	}
}

func TestRelevant(t *testing.T) {
	cases := map[fsnotify.Op]bool{
		fsnotify.Write:  true,
		fsnotify.Create: true,
		fsnotify.Rename: true,
		fsnotify.Remove: false,
		fsnotify.Chmod:  false,
	}
	for op, want := range cases {
		if got := relevant(op); got != want {
			t.Errorf("relevant(%v) = %v, want %v", op, got, want)
		}
	}
}
