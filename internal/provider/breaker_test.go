package provider

import (
	"errors"
	"testing"

	"github.com/sony/gobreaker"

	"StockScribe/internal/model"
)

func TestBreakerOpensAfterRepeatedFailures(t *testing.T) {
	inner := &MockProvider{Err: errors.New("connection refused")}
	b := NewBreakerProvider(inner)

	for i := 0; i < 3; i++ {
		if _, err := b.Fetch("AAPL", Query{}); err == nil {
			t.Fatalf("fetch %d: want error", i)
		}
	}

	_, err := b.Fetch("AAPL", Query{})
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("after repeated failures err = %v, want open circuit", err)
	}
}

func TestBreakerPassesEmptyFramesThrough(t *testing.T) {
	inner := &MockProvider{Frame: &model.Frame{}}
	b := NewBreakerProvider(inner)

	for i := 0; i < 10; i++ {
		f, err := b.Fetch("AAPL", Query{})
		if err != nil {
			t.Fatalf("fetch %d: %v; empty frames are successes", i, err)
		}
		if !f.Empty() {
			t.Fatalf("fetch %d: want empty frame", i)
		}
	}
}

func TestBreakerPassesDataThrough(t *testing.T) {
	inner := &MockProvider{Base: 100, Bars: 10}
	b := NewBreakerProvider(inner)

	f, err := b.Fetch("AAPL", Query{})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if f.Len() != 10 {
		t.Errorf("rows = %d, want 10", f.Len())
	}
	if b.Name() != "mock" {
		t.Errorf("Name = %q, want mock", b.Name())
	}
}
