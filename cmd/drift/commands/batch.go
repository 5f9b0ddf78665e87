package commands

import (
	"github.com/spf13/cobra"

	"drift/internal/store"
)

var batchParallel int

// batch <model.json> <record>...: the same model through several records.
func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <model.json> <record>...",
		Short: "Run one model through several library records",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := store.ReadModel(args[0])
			if err != nil {
				return err
			}

			results, err := wire.Transient.RunBatch(cmd.Context(), m, args[1:], transientOptions(), batchParallel)
			if err != nil {
				return err
			}
			for _, res := range results {
				art, err := wire.Report.Write(res)
				if err != nil {
					return err
				}
				printRun(res, art)
			}
			return nil
		},
	}
	transientFlags(cmd)
	cmd.Flags().IntVar(&batchParallel, "parallel", 4, "concurrent runs")
	return cmd
}
