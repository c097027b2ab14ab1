// Package cli wires the concierge commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xiaot623/gogo/concierge/internal/adapter/llm"
	"github.com/xiaot623/gogo/concierge/internal/adapter/places"
	"github.com/xiaot623/gogo/concierge/internal/config"
	"github.com/xiaot623/gogo/concierge/internal/repository"
	"github.com/xiaot623/gogo/concierge/internal/service"
	"github.com/xiaot623/gogo/concierge/pkg/logger"
)

var envFile string

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "concierge",
		Short:         "Bodegoes restaurant chat assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment")

	root.AddCommand(newServeCommand())
	root.AddCommand(newUserCommand())
	root.AddCommand(newEnvCommand())
	return root
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func newEnvCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Print the supported environment variables",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), config.Usage())
		},
	}
}

// app bundles the components built from one configuration.
type app struct {
	cfg   *config.Config
	store repository.Store
	svc   *service.Service
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if err := logger.Setup(os.Stderr, cfg.LogLevel, cfg.LogFormat); err != nil {
		return nil, err
	}

	store, err := repository.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	llmClient := llm.NewLLMClient(cfg)
	placesClient := places.NewClient(cfg.PlacesBaseURL, cfg.PlacesAPIKey, cfg.PlacesTimeout)

	return &app{
		cfg:   cfg,
		store: store,
		svc:   service.New(store, llmClient, placesClient, cfg),
	}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}
