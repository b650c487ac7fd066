package agent

import (
	"context"
	"fmt"

	"travel-agent/internal/application/port/output"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/agents"
	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/memory"
	"github.com/tmc/langchaingo/prompts"
	"github.com/tmc/langchaingo/tools"
)

var _ output.ConversationalAgent = (*TravelAgentAdapter)(nil)

type Config struct {
	APIKey       string
	Model        string
	BaseURL      string
	Name         string
	Temperature  float64
	Instructions string
}

// TravelAgentAdapter implements output.ConversationalAgent on langchaingo.
// The framework owns the function-calling loop and the message history;
// this adapter only hands it the model, the tools and the instructions.
type TravelAgentAdapter struct {
	llm     *openai.LLM
	toolset []tools.Tool
	cfg     Config
	logger  output.LoggerPort
}

func NewTravelAgentAdapter(cfg Config, toolset []tools.Tool, logger output.LoggerPort) (*TravelAgentAdapter, error) {
	llm, err := openai.New(
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
		openai.WithBaseURL(cfg.BaseURL),
	)
	if err != nil {
		return nil, fmt.Errorf("create llm client: %w", err)
	}

	return &TravelAgentAdapter{
		llm:     llm,
		toolset: toolset,
		cfg:     cfg,
		logger:  logger.WithField("agent", cfg.Name),
	}, nil
}

func (a *TravelAgentAdapter) Name() string { return a.cfg.Name }

// Thread binds an executor to one conversation buffer, so consecutive Ask
// calls on the same thread share history.
type Thread struct {
	id       string
	buffer   *memory.ConversationBuffer
	executor *agents.Executor
}

func (t *Thread) ID() string { return t.id }

// Clear drops the thread's accumulated history.
func (t *Thread) Clear(ctx context.Context) error {
	return t.buffer.Clear(ctx)
}

func (a *TravelAgentAdapter) NewThread() (output.ConversationThread, error) {
	buffer := memory.NewConversationBuffer(memory.WithReturnMessages(true))

	// Tool choice stays automatic: the functions agent decides on its own
	// when to call get_random_destination.
	functionsAgent := agents.NewOpenAIFunctionsAgent(a.llm, a.toolset,
		agents.NewOpenAIOption().WithSystemMessage(a.cfg.Instructions),
		agents.NewOpenAIOption().WithExtraMessages([]prompts.MessageFormatter{
			prompts.MessagesPlaceholder{VariableName: "history"},
		}),
	)

	thread := &Thread{
		id:       uuid.NewString(),
		buffer:   buffer,
		executor: agents.NewExecutor(functionsAgent, agents.WithMemory(buffer)),
	}

	a.logger.Debug("Thread created", "thread", thread.id)
	return thread, nil
}

func (a *TravelAgentAdapter) Ask(ctx context.Context, thread output.ConversationThread, message string) (string, error) {
	t, ok := thread.(*Thread)
	if !ok {
		return "", fmt.Errorf("thread %q was not created by this agent", thread.ID())
	}

	a.logger.Debug("Invoking agent", "thread", t.id, "message", message)

	reply, err := chains.Run(ctx, t.executor, message, chains.WithTemperature(a.cfg.Temperature))
	if err != nil {
		return "", fmt.Errorf("agent invocation failed: %w", err)
	}
	return reply, nil
}
