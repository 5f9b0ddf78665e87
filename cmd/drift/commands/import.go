package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"drift/internal/domain"
)

var (
	importDT   float64
	importUnit string
)

// import <file>: parse an AT2 or plain-text record into the library.
func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a ground-motion record file into the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gm, err := wire.Motions.Import(args[0], importDT, importUnit)
			if err != nil {
				return err
			}
			fmt.Printf("imported %q: %d points at dt=%g s [%s], PGA %.3f m/s2\n",
				gm.Name, gm.Points(), gm.DT, gm.Unit, gm.PGA())
			return nil
		},
	}
	cmd.Flags().Float64Var(&importDT, "dt", 0.02, "sample step of plain-text records, s")
	cmd.Flags().StringVar(&importUnit, "unit", domain.UnitG, "unit of plain-text records (g or m/s2)")
	return cmd
}
