package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/rkowalik/snapkeep/internal/config"
	"github.com/rkowalik/snapkeep/internal/privilege"
	"github.com/rkowalik/snapkeep/internal/runlog"
	"github.com/rkowalik/snapkeep/internal/runner"
)

func newDaemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run backups in-process on the configured cron schedule",
		Long: `Daemon validates the configuration, then triggers a backup run on the
schedule.cron expression (e.g. "30 2 * * *" for daily at 02:30) until
SIGINT or SIGTERM. A failed run is logged; the daemon keeps going.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if err := privilege.Check(cfg.RootRequired()); err != nil {
				return err
			}

			// Fail fast on a broken config instead of at 2 AM.
			if errs := config.Validate(cfg); len(errs) > 0 {
				return &runner.ValidationFailure{Errs: errs}
			}

			if cfg.Schedule.Cron == "" {
				return fmt.Errorf("schedule.cron must be set for daemon mode")
			}
			if _, err := cron.ParseStandard(cfg.Schedule.Cron); err != nil {
				return fmt.Errorf("invalid cron schedule %q: %w", cfg.Schedule.Cron, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logg := runlog.StdLogger{}
			run := runner.New(cfg, nil)

			c := cron.New()
			_, err = c.AddFunc(cfg.Schedule.Cron, func() {
				res, err := run.Run(ctx)
				if err != nil {
					logg.Error("scheduled run failed: %v", err)
					return
				}
				logg.Info("scheduled run %s done: built=%s exported=%s purged=%d errors=%d",
					res.RunID, res.Built, res.Exported, len(res.Purged), len(res.Errors))
			})
			if err != nil {
				return fmt.Errorf("scheduling run: %w", err)
			}

			c.Start()
			logg.Info("daemon started, schedule %q", cfg.Schedule.Cron)

			<-ctx.Done()

			// Stop and wait for a run in flight to finish.
			<-c.Stop().Done()
			logg.Info("daemon stopped")
			return nil
		},
	}
}
