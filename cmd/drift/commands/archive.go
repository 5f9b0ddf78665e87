package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// archive: list what the remote archive holds.
func archiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive",
		Short: "List the records the archive holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := wire.Archive.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Println("archive is empty")
				return nil
			}
			printRecordInfos(infos)
			return nil
		},
	}
}
