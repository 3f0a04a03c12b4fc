package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/standardize-cli/internal/batch"
	"github.com/sells-group/standardize-cli/internal/export"
	"github.com/sells-group/standardize-cli/internal/fetcher"
	"github.com/sells-group/standardize-cli/internal/model"
	"github.com/sells-group/standardize-cli/internal/store"
)

var (
	batchFile        string
	batchColumn      string
	batchOutput      string
	batchConcurrency int
	batchNoStore     bool
	batchNoGroups    bool
	batchDisplayCap  int
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Standardize a column of a CSV or XLSX file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		column := batchColumn
		if column == "" {
			column = cfg.Batch.Column
		}
		concurrency := batchConcurrency
		if concurrency == 0 {
			concurrency = cfg.Batch.Concurrency
		}

		table, err := fetcher.ReadTable(batchFile)
		if err != nil {
			return err
		}
		if !table.HasColumn(column) {
			return eris.Errorf("batch: column %q not found in %s", column, batchFile)
		}

		std, _, err := loadStandardizer(ctx)
		if err != nil {
			return err
		}

		runner := batch.NewRunner(std, batch.Options{
			Concurrency: concurrency,
			Progress: func(done, total int) {
				fmt.Fprintf(os.Stderr, "\rprocessed %d/%d", done, total)
				if done == total {
					fmt.Fprintln(os.Stderr)
				}
			},
		})

		var (
			run *model.Run
			st  store.Store
		)
		if !batchNoStore {
			st, err = initStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close() //nolint:errcheck

			run, err = st.CreateRun(ctx, batchFile, column)
			if err != nil {
				return err
			}
		}

		records, err := runner.Run(ctx, table.Rows, column)
		if err != nil {
			if run != nil {
				if fErr := st.FailRun(ctx, run.ID); fErr != nil {
					zap.L().Warn("failed to mark run failed", zap.Error(fErr))
				}
			}
			return eris.Wrap(err, "batch run")
		}

		if run != nil {
			if err := st.SaveRecords(ctx, run.ID, records); err != nil {
				return err
			}
			if err := st.CompleteRun(ctx, run.ID, model.Summarize(records)); err != nil {
				return err
			}
			zap.L().Info("run persisted", zap.String("run_id", run.ID))
		}

		if batchOutput != "" {
			if err := export.WriteRecords(records, batchOutput); err != nil {
				return err
			}
			zap.L().Info("results written", zap.String("path", batchOutput))
		}

		if !batchNoGroups {
			groups := batch.Group(records)
			if err := export.WriteGroupReport(os.Stdout, groups, batchDisplayCap); err != nil {
				return err
			}
		}

		summary := model.Summarize(records)
		fmt.Fprintf(os.Stderr, "%d names: %d matched, %d unmatched\n",
			summary.Total, summary.Matched, summary.Unmatched)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchFile, "file", "", "input CSV or XLSX file (required)")
	batchCmd.Flags().StringVar(&batchColumn, "column", "", "column holding firm names (default from config)")
	batchCmd.Flags().StringVar(&batchOutput, "output", "", "write standardized records to this CSV or XLSX file")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "worker count (default from config)")
	batchCmd.Flags().BoolVar(&batchNoStore, "no-store", false, "skip persisting the run")
	batchCmd.Flags().BoolVar(&batchNoGroups, "no-groups", false, "skip the grouped report")
	batchCmd.Flags().IntVar(&batchDisplayCap, "display-cap", 0, "max variants shown per group")
	_ = batchCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(batchCmd)
}
