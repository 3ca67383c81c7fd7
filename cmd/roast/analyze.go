package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Veraticus/statement-roast/internal/cli"
	"github.com/Veraticus/statement-roast/internal/common"
	"github.com/Veraticus/statement-roast/internal/config"
	"github.com/Veraticus/statement-roast/internal/engine"
	"github.com/Veraticus/statement-roast/internal/ingest"
	"github.com/Veraticus/statement-roast/internal/model"
	"github.com/Veraticus/statement-roast/internal/share"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// maxParallelStatements bounds concurrent statement loading.
const maxParallelStatements = 4

type statementResult struct {
	File   string        `json:"file"`
	Report engine.Report `json:"report"`
}

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [files...]",
		Short: "Analyze bank statements and hand out awards",
		Long: `Read one or more statements (CSV, OFX/QFX, JSON or plain text) and roast them.

Each file is analyzed as its own statement period and saved to the session
history, unless --merge combines them into one period first. Plain text
statements are read by the configured language model.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().Int("top", 0, "number of awards to show (default: display.top_awards)")
	cmd.Flags().Bool("no-save", false, "do not store the results in the session history")
	cmd.Flags().Bool("json", false, "print the full reports as JSON")
	cmd.Flags().Bool("merge", false, "combine all files into one statement, dropping duplicate transactions")
	cmd.Flags().Bool("share", false, "print the share card after each report")

	_ = viper.BindPFlag(config.KeyTopAwards, cmd.Flags().Lookup("top"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, files []string) error {
	noSave, _ := cmd.Flags().GetBool("no-save")
	asJSON, _ := cmd.Flags().GetBool("json")
	merge, _ := cmd.Flags().GetBool("merge")
	withShare, _ := cmd.Flags().GetBool("share")

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	extractor, err := newExtractor(settings)
	if err != nil {
		return err
	}

	interrupts := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx, stop := interrupts.HandleInterrupts(cmd.Context())
	defer stop()

	statements, err := loadStatements(ctx, files, extractor, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if merge {
		var all []model.Transaction
		for _, txns := range statements {
			all = append(all, txns...)
		}
		merged := ingest.Dedupe(all)
		slog.Info("Merged statements", "files", len(files), "transactions", len(merged), "duplicates", len(all)-len(merged))
		statements = [][]model.Transaction{merged}
		files = []string{strings.Join(baseNames(files), "+")}
	}

	var svc *engine.Service
	if !noSave {
		store, openErr := openStore(ctx, settings)
		if openErr != nil {
			return openErr
		}
		defer func() { _ = store.Close() }()
		svc = engine.NewService(store, nil)
	}

	results := make([]statementResult, 0, len(statements))
	for i, txns := range statements {
		if interrupts.WasInterrupted() {
			break
		}
		var report engine.Report
		if svc != nil {
			report, err = svc.Process(ctx, settings.SessionID, txns)
			if err != nil {
				return err
			}
		} else {
			report = engine.Analyze(txns)
		}
		common.LogDebug("Categorized statement", common.Fields{
			"file":       files[i],
			"month":      report.Month,
			"categories": report.CategoryCounts(),
			"awards":     len(report.Awards),
		})
		results = append(results, statementResult{File: files[i], Report: report})
	}

	var streaks []model.Streak
	if svc != nil && !interrupts.WasInterrupted() {
		streaks, err = svc.Streaks(ctx, settings.SessionID)
		if err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, results)
	}

	for _, r := range results {
		if len(results) > 1 {
			_, _ = fmt.Fprintln(out, cli.FormatInfo(r.File))
		}
		if err := cli.RenderReport(out, r.Report, settings.TopAwards, streaks); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		if withShare {
			_, _ = fmt.Fprintf(out, "\n%s\n\n", share.Format(r.Report.Month, r.Report.Awards, streaks, settings.TopAwards))
		}
	}

	if !noSave && !interrupts.WasInterrupted() {
		_, _ = fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Guardado en la sesión %q", settings.SessionID)))
	}
	return nil
}

// loadStatements parses every file concurrently, preserving argument order.
func loadStatements(ctx context.Context, files []string, extractor ingest.Extractor, progressOut io.Writer) ([][]model.Transaction, error) {
	statements := make([][]model.Transaction, len(files))
	progress := cli.NewProgress(progressOut, len(files))
	defer progress.Finish()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelStatements)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			txns, err := ingest.Load(gctx, path, extractor)
			if err != nil {
				common.LogError(err, "Failed to load statement", common.Fields{"path": path})
				return err
			}
			common.LogDebug("Loaded statement", common.Fields{"path": path, "transactions": len(txns)})
			statements[i] = txns
			progress.Done()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return statements, nil
}

func baseNames(files []string) []string {
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = filepath.Base(f)
	}
	return names
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
