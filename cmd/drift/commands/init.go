package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"drift/internal/domain"
	"drift/internal/store"
)

// init [path]: write a starter three-story model.
func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter three-story model file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "model.json"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}

			m := domain.Model{
				Name:         "threestory",
				DampingRatio: 0.05,
				Stories: []domain.Story{
					{Mass: 0.1, Stiffness: 60, YieldStrength: 0.55, Hardening: 0.01},
					{Mass: 0.1, Stiffness: 50, YieldStrength: 0.45, Hardening: 0.01},
					{Mass: 0.1, Stiffness: 30, YieldStrength: 0.30, Hardening: 0.01},
				},
			}
			if err := store.WriteModel(path, m); err != nil {
				return err
			}
			fmt.Printf("Wrote %s (%d stories, %.0f%% damping)\n", path, m.Size(), m.DampingRatio*100)
			return nil
		},
	}
}
