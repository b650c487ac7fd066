package output

import "context"

// ConversationalAgent is the external collaborator that owns LLM invocation,
// tool-call orchestration and message history. The application only supplies
// tools and user messages; how a reply is produced is the collaborator's
// business.
type ConversationalAgent interface {
	Name() string
	NewThread() (ConversationThread, error)
	Ask(ctx context.Context, thread ConversationThread, message string) (string, error)
}

// ConversationThread binds consecutive messages to one conversation.
type ConversationThread interface {
	ID() string
	Clear(ctx context.Context) error
}
