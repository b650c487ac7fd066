package tool

import (
	"context"

	"travel-agent/internal/application/port/output"
	"travel-agent/internal/destinations"

	"github.com/tmc/langchaingo/tools"
)

var _ tools.Tool = (*RandomDestinationTool)(nil)

// RandomDestinationTool exposes the destination picker to the agent
// framework. It takes no input; the framework decides when to call it.
type RandomDestinationTool struct {
	picker *destinations.Picker
	logger output.LoggerPort
}

func NewRandomDestinationTool(picker *destinations.Picker, logger output.LoggerPort) *RandomDestinationTool {
	return &RandomDestinationTool{
		picker: picker,
		logger: logger.WithField("tool", "get_random_destination"),
	}
}

func (t *RandomDestinationTool) Name() string { return "get_random_destination" }

func (t *RandomDestinationTool) Description() string {
	return "Provides a random vacation destination."
}

func (t *RandomDestinationTool) Call(ctx context.Context, input string) (string, error) {
	destination := t.picker.Pick()
	t.logger.Info("Tool called", "destination", destination)
	return destination, nil
}
