// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/poiesic/scenematch"
	"github.com/poiesic/scenematch/ai"
)

func main() {
	app := &cli.App{
		Name:  "scenematch",
		Usage: "Find movies by describing a scene",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search for movies matching a scene description",
				ArgsUsage: "<scene description>",
				Action:    searchCommand,
				Flags:     append(engineFlags(), searchFlags()...),
			},
			{
				Name:   "serve",
				Usage:  "Run the search HTTP server",
				Action: serveCommand,
				Flags: append(engineFlags(),
					&cli.StringFlag{
						Name:    "addr",
						Aliases: []string{"a"},
						Usage:   "Listen address",
						Value:   ":8080",
					},
				),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func engineFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "tmdb-key",
			Usage:    "TMDB API key",
			EnvVars:  []string{"TMDB_API_KEY"},
			Required: true,
		},
		&cli.StringFlag{
			Name:  "host",
			Usage: "OpenAI-compatible service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "intfloat/e5-base-v2",
		},
		&cli.StringFlag{
			Name:  "chat-model",
			Usage: "Chat model name for scene analysis and reranking",
			Value: "qwen2.5:3b",
		},
		&cli.StringFlag{
			Name:    "token",
			Usage:   "API token for the AI services",
			EnvVars: []string{"OPENAI_API_KEY"},
		},
		&cli.StringFlag{
			Name:  "cache-dir",
			Usage: "Embedding cache directory (disabled when empty)",
		},
	}
}

func searchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "locale",
			Usage: "Result language, e.g. en-US or tr-TR",
			Value: "en-US",
		},
	}
}

func newEngine(c *cli.Context) (*scenematch.Engine, error) {
	configOpts := []ai.ConfigOption{
		ai.WithHost(c.String("host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
		ai.WithChatModel(c.String("chat-model")),
	}
	if token := c.String("token"); token != "" {
		configOpts = append(configOpts, ai.WithToken(token))
	}

	engineOpts := []scenematch.EngineOption{
		scenematch.WithAIConfig(ai.NewConfig(configOpts...)),
	}
	if cacheDir := c.String("cache-dir"); cacheDir != "" {
		engineOpts = append(engineOpts, scenematch.WithCachePath(cacheDir))
	}

	return scenematch.NewEngine(c.String("tmdb-key"), engineOpts...)
}

func searchCommand(c *cli.Context) error {
	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("scene description is required")
	}

	engine, err := newEngine(c)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	defer engine.Close()

	results, err := engine.SearchFilmsByScene(context.Background(), query, c.String("locale"))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(results)
}

func serveCommand(c *cli.Context) error {
	engine, err := newEngine(c)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}
	defer engine.Close()

	server := newServer(engine, slog.Default())
	addr := c.String("addr")
	slog.Info("starting search server", "addr", addr)
	return server.listenAndServe(addr)
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
