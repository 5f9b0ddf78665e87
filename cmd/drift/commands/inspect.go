package commands

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"drift/internal/util/unit"
)

var inspectDump bool

// inspect <name>: show one library record in detail.
func inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <name>",
		Short: "Show a library record in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gm, err := wire.Motions.Load(args[0])
			if err != nil {
				return err
			}
			sum, err := wire.Motions.Checksum(gm)
			if err != nil {
				return err
			}

			fmt.Printf("record %q\n", gm.Name)
			fmt.Printf("  points   %d\n", gm.Points())
			fmt.Printf("  dt       %g s\n", gm.DT)
			fmt.Printf("  duration %.2f s\n", gm.Duration())
			fmt.Printf("  unit     %s\n", gm.Unit)
			fmt.Printf("  pga      %.3f m/s2 (%.3f g)\n", gm.PGA(), gm.PGA()/unit.G)
			fmt.Printf("  checksum %s\n", sum)
			if inspectDump {
				fmt.Print(spew.Sdump(gm))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&inspectDump, "dump", false, "dump the full record struct")
	return cmd
}
