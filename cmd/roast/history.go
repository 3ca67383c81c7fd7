package main

import (
	"fmt"

	"github.com/Veraticus/statement-roast/internal/cli"
	"github.com/Veraticus/statement-roast/internal/engine"
	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the months stored for the session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			settings, err := loadSettings()
			if err != nil {
				return err
			}
			store, err := openStore(cmd.Context(), settings)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			history, err := engine.NewService(store, nil).History(cmd.Context(), settings.SessionID)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), history)
			}
			if err := cli.RenderHistory(cmd.OutOrStdout(), history); err != nil {
				return fmt.Errorf("failed to render history: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "print the stored summaries as JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <month>",
		Short: "Forget one stored month (YYYY-MM)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			store, err := openStore(cmd.Context(), settings)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteSummary(cmd.Context(), settings.SessionID, args[0]); err != nil {
				return fmt.Errorf("failed to delete %s: %w", args[0], err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess("Borrado "+cli.MonthTitle(args[0])))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sessions",
		Short: "List every session with stored history",
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

			sessions, err := store.ListSessions(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range sessions {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	})

	return cmd
}
