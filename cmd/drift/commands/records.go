package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"drift/internal/domain"
)

// records: list the local library.
func recordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "records",
		Short: "List the local record library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := wire.Motions.List()
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Println("library is empty; use import or fetch")
				return nil
			}
			printRecordInfos(infos)
			return nil
		},
	}
}

func printRecordInfos(infos []domain.RecordInfo) {
	for _, r := range infos {
		duration := 0.0
		if r.Points > 1 {
			duration = float64(r.Points-1) * r.DT
		}
		fmt.Printf("%-24s %7d pts  dt %-7g %7.2f s  [%s]\n",
			r.Name, r.Points, r.DT, duration, r.Unit)
	}
}
