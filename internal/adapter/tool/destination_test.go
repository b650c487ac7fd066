package tool

import (
	"context"
	"math/rand"
	"testing"

	"travel-agent/internal/application/port/output"
	"travel-agent/internal/destinations"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any) {}
func (nopLogger) Info(msg string, args ...any) {}
func (nopLogger) Warn(msg string, args ...any) {}
func (nopLogger) Error(msg string, args ...any) {}
func (l nopLogger) WithField(key string, value any) output.LoggerPort { return l }
func (nopLogger) Close() error { return nil }

func newTestTool(t *testing.T, catalog []string) *RandomDestinationTool {
	t.Helper()
	picker, err := destinations.New(catalog, destinations.WithRand(rand.New(rand.NewSource(5))))
	if err != nil {
		t.Fatalf("failed to create picker: %v", err)
	}
	return NewRandomDestinationTool(picker, nopLogger{})
}

func TestRandomDestinationTool_Metadata(t *testing.T) {
	tl := newTestTool(t, []string{"Paris, France"})

	if tl.Name() != "get_random_destination" {
		t.Errorf("Name = %q", tl.Name())
	}
	if tl.Description() != "Provides a random vacation destination." {
		t.Errorf("Description = %q", tl.Description())
	}
}

func TestRandomDestinationTool_Call(t *testing.T) {
	catalog := []string{"Berlin, Germany", "Rio de Janeiro, Brazil", "Cape Town, South Africa"}
	members := make(map[string]bool, len(catalog))
	for _, d := range catalog {
		members[d] = true
	}

	tl := newTestTool(t, catalog)

	prev := ""
	for i := 0; i < 100; i++ {
		got, err := tl.Call(context.Background(), "")
		if err != nil {
			t.Fatalf("Call %d failed: %v", i, err)
		}
		if !members[got] {
			t.Fatalf("Call %d returned %q, not a catalog member", i, got)
		}
		if got == prev {
			t.Fatalf("Call %d repeated previous destination %q", i, got)
		}
		prev = got
	}
}

func TestRandomDestinationTool_IgnoresInput(t *testing.T) {
	tl := newTestTool(t, []string{"Tokyo, Japan"})

	// The tool declares no parameters; whatever the model sends must not
	// affect the result.
	for _, input := range []string{"", "{}", `{"country":"Japan"}`, "garbage"} {
		got, err := tl.Call(context.Background(), input)
		if err != nil {
			t.Fatalf("Call with input %q failed: %v", input, err)
		}
		if got != "Tokyo, Japan" {
			t.Errorf("Call with input %q = %q", input, got)
		}
	}
}
