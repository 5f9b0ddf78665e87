package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"drift/internal/domain"
	"drift/internal/services/report"
	"drift/internal/store"
	"drift/internal/util/unit"
)

var (
	runDT       float64
	runDuration float64
	runTol      float64
	runIters    int
	runOut      string
)

// transientFlags registers the integration options shared by run and batch.
func transientFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&runDT, "dt", 0.01, "integration and output step, s")
	cmd.Flags().Float64Var(&runDuration, "duration", 0, "analysis length, s (0: record length)")
	cmd.Flags().Float64Var(&runTol, "tolerance", 1e-12, "unbalanced-force norm tolerance, kN")
	cmd.Flags().IntVar(&runIters, "max-iterations", 100, "Newton iterations per step")
}

func transientOptions() domain.TransientOptions {
	opts := domain.DefaultTransientOptions()
	opts.DT = runDT
	opts.Duration = runDuration
	opts.Tolerance = runTol
	opts.MaxIterations = runIters
	return opts
}

// run <model.json> <record>: one nonlinear time-history analysis.
func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <model.json> <record>",
		Short: "Run a nonlinear time-history analysis",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := store.ReadModel(args[0])
			if err != nil {
				return err
			}
			gm, err := wire.Motions.Load(args[1])
			if err != nil {
				return err
			}

			res, err := wire.Transient.Run(cmd.Context(), m, gm, transientOptions())
			if err != nil {
				return err
			}

			rep := wire.Report
			if runOut != "" {
				results, err := store.NewResultDir(runOut)
				if err != nil {
					return err
				}
				rep = report.New(results, wire.Log)
			}
			art, err := rep.Write(res)
			if err != nil {
				return err
			}
			printRun(res, art)
			return nil
		},
	}
	transientFlags(cmd)
	cmd.Flags().StringVar(&runOut, "out", "", "run artifact dir (default <home>/runs)")
	return cmd
}

func printRun(res *domain.RunResult, art domain.RunArtifacts) {
	mf := res.Manifest
	fmt.Printf("run %s: %q under %q, %d steps of %g s\n",
		mf.RunID, mf.Model.Name, mf.Record.Name, res.History.Steps(), mf.Options.DT)
	periods := make([]string, len(res.Modal.Period))
	for k, period := range res.Modal.Period {
		periods[k] = fmt.Sprintf("T%d=%.4f s", k+1, period)
	}
	fmt.Printf("  periods: %s\n", strings.Join(periods, "  "))
	for i := range mf.Peaks.Disp {
		fmt.Printf("  floor %d: disp %8.2f mm  accel %7.3f m/s2  force %7.3f kN\n",
			i+1,
			unit.ToMM(mf.Peaks.Disp[i]),
			mf.Peaks.Accel[i],
			mf.Peaks.Force[i])
	}
	fmt.Printf("  artifacts in %s\n", art.Dir)
}
