package main

import (
	"fmt"

	"github.com/Veraticus/statement-roast/internal/cli"
	"github.com/Veraticus/statement-roast/internal/engine"
	"github.com/spf13/cobra"
)

func streaksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "streaks",
		Short: "Show awards won in consecutive months",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			store, err := openStore(cmd.Context(), settings)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			streaks, err := engine.NewService(store, nil).Streaks(cmd.Context(), settings.SessionID)
			if err != nil {
				return err
			}
			if err := cli.RenderStreaks(cmd.OutOrStdout(), streaks); err != nil {
				return fmt.Errorf("failed to render streaks: %w", err)
			}
			return nil
		},
	}
}
