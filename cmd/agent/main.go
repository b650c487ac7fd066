package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"travel-agent/internal/di"
	"travel-agent/internal/infrastructure/env"
)

// Default conversation: the second turn only makes sense because both turns
// share one thread and the picker never repeats its previous destination.
var defaultTurns = []string{
	"Plan me a day trip.",
	"I don't like that destination. Plan me another vacation.",
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file (optional)")
	flag.Parse()

	envService := env.NewEnvService()

	timeoutMinutes := envService.GetInt("SESSION_TIMEOUT_MINUTES", 5)
	debug := envService.GetBool("AGENT_DEBUG", false)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutMinutes)*time.Minute)
	defer cancel()

	container, err := di.NewContainer(di.Config{
		OpenRouterAPIKey: envService.MustGet("OPENROUTER_API_KEY"),
		OpenRouterModel:  envService.Get("OPENROUTER_MODEL_NAME"),
		ConfigPath:       *configPath,
		Debug:            debug,
		Out:              os.Stdout,
	})
	if err != nil {
		log.Fatalf("failed to initialize: %v", err)
	}
	defer container.Close()

	// Positional arguments replace the scripted turns.
	turns := defaultTurns
	if flag.NArg() > 0 {
		turns = flag.Args()
	}

	transcript, err := container.Runner.Run(ctx, turns)
	if err != nil {
		container.Logger.Error("Conversation failed", "error", err)
		fmt.Printf("\nError: %v\n", err)
		os.Exit(1)
	}

	container.Logger.Info("Session finished", "turns", len(transcript))
}
