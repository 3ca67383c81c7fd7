package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/Veraticus/statement-roast/internal/classification"
	"github.com/Veraticus/statement-roast/internal/cli"
	"github.com/spf13/cobra"
)

func categorizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categorize [descriptions...]",
		Short: "Show the category assigned to transaction descriptions",
		Long: `Categorize one or more transaction descriptions with the built-in keyword rules.

With no arguments, descriptions are read from standard input, one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptions := args
			if len(descriptions) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if line := strings.TrimSpace(scanner.Text()); line != "" {
						descriptions = append(descriptions, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return fmt.Errorf("failed to read descriptions: %w", err)
				}
			}

			categorizer := classification.Default()
			out := cmd.OutOrStdout()
			for _, d := range descriptions {
				category := categorizer.Categorize(d)
				_, _ = fmt.Fprintf(out, "%-20s %-22s %s\n",
					category, cli.SubtleStyle.Render(cli.CategoryLabel(category)), d)
			}
			return nil
		},
	}
}
