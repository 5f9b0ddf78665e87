package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"drift/internal/store"
)

// validate <model.json>: check a model file and print its stories.
func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <model.json>",
		Short: "Validate a model file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := store.ReadModel(args[0])
			if err != nil {
				return err
			}

			i, j := m.Modes()
			fmt.Printf("model %q: %d stories, %.1f%% damping on modes %d,%d\n",
				m.Name, m.Size(), m.DampingRatio*100, i, j)
			for n, st := range m.Stories {
				if st.Elastic {
					fmt.Printf("  story %d: m=%g t  k=%g kN/m  elastic\n", n+1, st.Mass, st.Stiffness)
					continue
				}
				fmt.Printf("  story %d: m=%g t  k=%g kN/m  Fy=%g kN  b=%g\n",
					n+1, st.Mass, st.Stiffness, st.YieldStrength, st.Hardening)
			}
			return nil
		},
	}
}
