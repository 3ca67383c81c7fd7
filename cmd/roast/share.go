package main

import (
	"errors"
	"fmt"

	"github.com/Veraticus/statement-roast/internal/awards"
	"github.com/Veraticus/statement-roast/internal/common"
	"github.com/Veraticus/statement-roast/internal/engine"
	"github.com/Veraticus/statement-roast/internal/model"
	"github.com/Veraticus/statement-roast/internal/share"
	"github.com/spf13/cobra"
)

func shareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share [month]",
		Short: "Print a share card for a stored month (default: latest)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings()
			if err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("top")
			if limit <= 0 {
				limit = settings.TopAwards
			}

			store, err := openStore(cmd.Context(), settings)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			svc := engine.NewService(store, nil)
			history, err := svc.History(cmd.Context(), settings.SessionID)
			if err != nil {
				return err
			}
			if len(history) == 0 {
				return common.NewUserError("no hay meses guardados, corre primero: roast analyze <archivo>", common.ErrNotFound)
			}

			target := history[len(history)-1]
			if len(args) == 1 {
				found, getErr := store.GetSummary(cmd.Context(), settings.SessionID, args[0])
				if errors.Is(getErr, common.ErrNotFound) {
					return common.NewUserError(fmt.Sprintf("no hay datos guardados para %s", args[0]), getErr)
				}
				if getErr != nil {
					return getErr
				}
				target = *found
			}

			streaks, err := svc.Streaks(cmd.Context(), settings.SessionID)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), share.Format(target.Month, storedAwards(target.AwardsWon), streaks, limit))
			return nil
		},
	}
	cmd.Flags().Int("top", 0, "number of awards on the card (default: display.top_awards)")
	return cmd
}

// storedAwards rebuilds displayable awards from persisted ids, which are
// stored in ranked order.
func storedAwards(ids []model.AwardID) []model.Award {
	out := make([]model.Award, 0, len(ids))
	for _, id := range ids {
		badge := awards.Describe(id)
		out = append(out, model.Award{ID: id, Title: badge.Title, Emoji: badge.Emoji})
	}
	return out
}
