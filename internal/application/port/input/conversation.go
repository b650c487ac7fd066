package input

import (
	"context"

	"travel-agent/internal/domain/entity"
)

type ConversationRunner interface {
	Run(ctx context.Context, turns []string) ([]entity.Turn, error)
}
