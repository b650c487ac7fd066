package di

import (
	"fmt"
	"io"
	"strings"

	"travel-agent/internal/adapter/tool"
	"travel-agent/internal/application/port/input"
	"travel-agent/internal/application/port/output"
	"travel-agent/internal/destinations"
	agentinfra "travel-agent/internal/infrastructure/agent"
	"travel-agent/internal/infrastructure/config"
	"travel-agent/internal/infrastructure/logger"
	"travel-agent/internal/infrastructure/prompts"
	"travel-agent/internal/usecase/conversation"

	"github.com/tmc/langchaingo/tools"
)

type Container struct {
	Logger output.LoggerPort
	Picker *destinations.Picker
	Agent  output.ConversationalAgent
	Runner input.ConversationRunner
}

type Config struct {
	OpenRouterAPIKey string
	OpenRouterModel  string
	ConfigPath       string
	Debug            bool
	Out              io.Writer
}

func NewContainer(cfg Config) (*Container, error) {
	appCfg, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := appCfg.Log.Level
	if cfg.Debug {
		logLevel = "debug"
	}
	log, err := logger.NewZapAdapter(appCfg.Agent.Name, logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	picker, err := destinations.New(appCfg.Destinations)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to create destination picker: %w", err)
	}

	model := appCfg.Agent.Model
	if cfg.OpenRouterModel != "" {
		model = cfg.OpenRouterModel
	}
	instructions := appCfg.Agent.Instructions
	if instructions == "" {
		instructions = strings.TrimSpace(prompts.DefaultInstructions)
	}

	agent, err := agentinfra.NewTravelAgentAdapter(agentinfra.Config{
		APIKey:       cfg.OpenRouterAPIKey,
		Model:        model,
		BaseURL:      appCfg.Agent.BaseURL,
		Name:         appCfg.Agent.Name,
		Temperature:  appCfg.Agent.Temperature,
		Instructions: instructions,
	}, []tools.Tool{
		tool.NewRandomDestinationTool(picker, log),
	}, log)
	if err != nil {
		log.Close()
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	return &Container{
		Logger: log,
		Picker: picker,
		Agent:  agent,
		Runner: conversation.New(agent, log, cfg.Out),
	}, nil
}

func (c *Container) Close() {
	if c.Logger != nil {
		c.Logger.Close()
	}
}
