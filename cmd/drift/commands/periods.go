package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"drift/internal/store"
)

// periods <model.json>: eigen analysis of the model.
func periodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "periods <model.json>",
		Short: "Print natural periods, frequencies and mode shapes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := store.ReadModel(args[0])
			if err != nil {
				return err
			}
			res, err := wire.Modal.Analyze(cmd.Context(), m)
			if err != nil {
				return err
			}

			for k := range res.Omega {
				fmt.Printf("mode %d: T=%.4f s  f=%.4f Hz  w=%.4f rad/s\n",
					k+1, res.Period[k], res.Frequency[k], res.Omega[k])
				fmt.Printf("  shape %s\n", formatShape(res.Shapes[k]))
			}
			i, j := m.Modes()
			fmt.Printf("rayleigh: a0=%.6g  a1=%.6g  (%.1f%% damping at modes %d,%d)\n",
				res.AlphaM, res.BetaKComm, m.DampingRatio*100, i, j)
			return nil
		},
	}
}

func formatShape(shape []float64) string {
	parts := make([]string, len(shape))
	for i, v := range shape {
		parts[i] = fmt.Sprintf("%8.4f", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
