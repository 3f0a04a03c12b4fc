package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/standardize-cli/internal/kb"
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Inspect the knowledge base",
}

// -- kb validate --

var kbValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the knowledge base and report problems",
	RunE: func(cmd *cobra.Command, _ []string) error {
		base, err := kb.Load(cmd.Context(), cfg.KB.Source, newFetcher())
		if err != nil {
			return err
		}

		fmt.Printf("%s: %d variants, %d labels, %d corpus entries\n",
			cfg.KB.Source, base.Len(), len(base.Labels()), base.CorpusLen())
		return nil
	},
}

// -- kb stats --

var kbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show knowledge base statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		base, err := kb.Load(cmd.Context(), cfg.KB.Source, newFetcher())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintf(w, "Source:\t%s\n", cfg.KB.Source)
		_, _ = fmt.Fprintf(w, "Indexed variants:\t%d\n", base.Len())
		_, _ = fmt.Fprintf(w, "Standard labels:\t%d\n", len(base.Labels()))
		_, _ = fmt.Fprintf(w, "Corpus entries:\t%d\n", base.CorpusLen())
		_, _ = fmt.Fprintf(w, "Unindexed entries:\t%d\n", len(base.Unindexed()))
		return w.Flush()
	},
}

func init() {
	kbCmd.AddCommand(kbValidateCmd)
	kbCmd.AddCommand(kbStatsCmd)
	rootCmd.AddCommand(kbCmd)
}
