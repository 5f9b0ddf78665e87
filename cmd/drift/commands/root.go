package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"drift/internal/app"
)

var (
	home       string
	archiveURL string
	verbose    bool

	wire *app.Wire
)

// Execute runs the drift CLI.
func Execute() error {
	root := &cobra.Command{
		Use:   "drift",
		Short: "Nonlinear time-history analysis of shear buildings",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".drift")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			log := zap.NewNop().Sugar()
			if verbose {
				zl, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				log = zl.Sugar()
			}

			w, err := app.NewWire(app.Config{
				Home:       home,
				ArchiveURL: archiveURL,
				Logger:     log,
			})
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "data dir (default ~/.drift)")
	root.PersistentFlags().StringVar(&archiveURL, "archive", "http://127.0.0.1:8025", "archive base URL")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")

	root.AddCommand(
		initCmd(),
		validateCmd(),
		periodsCmd(),
		runCmd(),
		batchCmd(),
		recordsCmd(),
		importCmd(),
		fetchCmd(),
		archiveCmd(),
		inspectCmd(),
	)
	return root.Execute()
}
