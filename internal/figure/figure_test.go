package figure_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"drift/internal/domain"
	"drift/internal/figure"
)

func smallRun(t *testing.T) *domain.RunResult {
	t.Helper()

	h := domain.NewHistory(2, 10, 0.01)
	for i := 0; i <= 10; i++ {
		fi := float64(i)
		h.Record(i,
			[]float64{0.001 * fi, -0.002 * fi},
			[]float64{0.5 * fi, -0.8 * fi},
			[]float64{0.3 * fi, -0.2 * fi},
		)
	}
	return &domain.RunResult{
		Motion: domain.GroundMotion{
			Name:  "pulse",
			DT:    0.02,
			Unit:  domain.UnitG,
			Accel: []float64{0, 0.1, -0.2, 0.1, 0},
		},
		History: h,
	}
}

func assertPNG(t *testing.T, path string) {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open figure: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		t.Fatalf("degenerate figure %dx%d", cfg.Width, cfg.Height)
	}
}

func TestAccelerations_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accelerations.png")
	if err := figure.Accelerations(smallRun(t), path); err != nil {
		t.Fatalf("render accelerations: %v", err)
	}
	assertPNG(t, path)
}

func TestDisplacements_WritesPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "displacements.png")
	if err := figure.Displacements(smallRun(t), path); err != nil {
		t.Fatalf("render displacements: %v", err)
	}
	assertPNG(t, path)
}
