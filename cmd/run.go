package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/standardize-cli/internal/model"
)

var runCmd = &cobra.Command{
	Use:   "run <name>...",
	Short: "Standardize one or more firm names",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		std, base, err := loadStandardizer(ctx)
		if err != nil {
			return err
		}
		zap.L().Debug("knowledge base ready", zap.Int("variants", base.Len()))

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		unmatched := 0
		for _, raw := range args {
			label := std.Standardize(raw)
			if label == model.Unknown {
				unmatched++
			}
			_, _ = fmt.Fprintf(w, "%s\t%s\n", raw, label)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if unmatched > 0 {
			fmt.Fprintf(os.Stderr, "%d of %d names unmatched\n", unmatched, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
