package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkowalik/snapkeep/internal/config"
	"github.com/rkowalik/snapkeep/internal/runner"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration without running a backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			if errs := config.Validate(cfg); len(errs) > 0 {
				for _, e := range errs {
					fmt.Printf("  - %v\n", e)
				}
				return &runner.ValidationFailure{Errs: errs}
			}

			fmt.Println("configuration ok")
			return nil
		},
	}
}
