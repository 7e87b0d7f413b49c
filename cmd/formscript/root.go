package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/internal/scenario"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

type flags struct {
	envFiles []string
	policy   string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "formscript <scenario.yaml>",
		Short: "Replay UI events against a form",
		Long: `Replays the events of a scenario file against the profile, listitem or
selection form and prints the final page state, the saved record and any
rejected events as YAML.

Environment:
  FORMKIT_LOG_LEVEL       debug, info, warn or error (default info)
  FORMKIT_LOG_FORMAT      text or json (default text)
  FORMKIT_PRICE_DELAY     latency of a grid price quote (default 100ms)
  FORMKIT_INVALID_POLICY  any or touched (default any)`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], f)
		},
	}

	cmd.Flags().StringSliceVar(&f.envFiles, "env-file", nil, "load variables from these .env files")
	cmd.Flags().StringVar(&f.policy, "policy", "", "override FORMKIT_INVALID_POLICY")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log every event")
	return cmd
}

func run(cmd *cobra.Command, path string, f flags) error {
	cfg, err := loadConfig(f.envFiles...)
	if err != nil {
		return err
	}
	if f.policy != "" {
		cfg.InvalidPolicy = f.policy
	}

	policy, err := cfg.policy()
	if err != nil {
		return err
	}
	log, err := cfg.logger(f.verbose)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	ctx := cmd.Context()
	sc, err := scenario.Load(path)
	if err != nil {
		log.ErrorContext(ctx, "scenario not loaded", logger.Error(err))
		return err
	}

	res, err := scenario.Run(ctx, sc, scenario.Config{
		Policy:     policy,
		PriceDelay: cfg.PriceDelay,
		Logger:     log,
	})
	if err != nil {
		log.ErrorContext(ctx, "scenario failed", logger.Error(err))
		return err
	}
	log.InfoContext(ctx, "scenario done",
		logger.Form(res.Form),
		logger.Revision(res.Revision),
		logger.Group("run", slog.Int("events", len(sc.Events)), slog.Int("rejected", len(res.Rejected))),
		slog.String("policy", policy.String()),
	)

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("formscript: encode result: %w", err)
	}
	return enc.Close()
}
