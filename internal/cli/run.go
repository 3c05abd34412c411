package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rkowalik/snapkeep/internal/config"
	"github.com/rkowalik/snapkeep/internal/privilege"
	"github.com/rkowalik/snapkeep/internal/runner"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Perform one backup run",
		Long: `Run performs a single backup run: on the configured export day it
promotes one qualifying daily archive to the weekly store and purges
daily archives past the retention window, then builds today's archive.

Non-fatal failures (a single purge or the weekly copy failing) are
recorded in the run's error log; the run still exits 0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if err := privilege.Check(cfg.RootRequired()); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			res, err := runner.New(cfg, nil).Run(ctx)
			if err != nil {
				return err
			}

			printResult(res)
			return nil
		},
	}
}

func printResult(res *runner.RunResult) {
	fmt.Printf("run %s complete\n", res.RunID)
	fmt.Printf("  built:    %s\n", res.Built)
	if res.Exported != "" {
		fmt.Printf("  exported: %s\n", res.Exported)
	}
	for _, p := range res.Purged {
		fmt.Printf("  purged:   %s\n", p)
	}
	if len(res.Errors) > 0 {
		fmt.Fprintf(os.Stderr, "%d non-fatal error(s) recorded, see the run's .err log\n", len(res.Errors))
	}
}
