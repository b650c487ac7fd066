package conversation

import (
	"context"
	"fmt"
	"io"

	"travel-agent/internal/application/port/input"
	"travel-agent/internal/application/port/output"
	"travel-agent/internal/domain/entity"
)

var _ input.ConversationRunner = (*UseCase)(nil)

// UseCase drives a sequence of user turns through the agent on a single
// conversation thread and prints the exchange as it happens.
type UseCase struct {
	agent  output.ConversationalAgent
	logger output.LoggerPort
	out    io.Writer
}

func New(agent output.ConversationalAgent, logger output.LoggerPort, out io.Writer) *UseCase {
	return &UseCase{
		agent:  agent,
		logger: logger,
		out:    out,
	}
}

func (uc *UseCase) Run(ctx context.Context, turns []string) ([]entity.Turn, error) {
	thread, err := uc.agent.NewThread()
	if err != nil {
		return nil, fmt.Errorf("create thread: %w", err)
	}
	defer func() {
		if err := thread.Clear(context.Background()); err != nil {
			uc.logger.Warn("Failed to clear thread", "thread", thread.ID(), "error", err)
		}
	}()

	uc.logger.Info("Conversation started", "thread", thread.ID(), "turns", len(turns))

	transcript := make([]entity.Turn, 0, len(turns))
	for _, userInput := range turns {
		fmt.Fprintf(uc.out, "# User: %s\n", userInput)

		reply, err := uc.agent.Ask(ctx, thread, userInput)
		if err != nil {
			uc.logger.Error("Turn failed", "thread", thread.ID(), "error", err)
			return transcript, fmt.Errorf("turn failed: %w", err)
		}

		fmt.Fprintf(uc.out, "# %s: %s\n", uc.agent.Name(), reply)
		transcript = append(transcript, entity.Turn{User: userInput, Reply: reply})
	}

	uc.logger.Info("Conversation completed", "thread", thread.ID(), "turns", len(transcript))
	return transcript, nil
}
