package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// fetch <name>: download a record from the archive.
func fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <name>",
		Short: "Download a record from the archive into the library",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gm, err := wire.Motions.Fetch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("fetched %q: %d points at dt=%g s [%s]\n",
				gm.Name, gm.Points(), gm.DT, gm.Unit)
			return nil
		},
	}
}
