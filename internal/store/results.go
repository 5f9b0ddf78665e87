package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"drift/internal/domain"
)

// ResultDir persists run outputs, one directory per run, under a common root.
// Each run holds a manifest.json and a history.csv; figures land alongside.
type ResultDir struct {
	mu   sync.Mutex
	root string
}

// interface guard
var _ domain.ResultStore = (*ResultDir)(nil)

// NewResultDir opens the results root, creating it if needed.
func NewResultDir(root string) (*ResultDir, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create results root %s: %w", root, err)
	}
	return &ResultDir{root: root}, nil
}

// Root returns the directory holding all runs.
func (r *ResultDir) Root() string { return r.root }

// CreateRun makes the directory for runID and returns its path.
func (r *ResultDir) CreateRun(runID string) (string, error) {
	if err := validName(runID); err != nil {
		return "", err
	}
	dir := filepath.Join(r.root, runID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create run directory %s: %w", dir, err)
	}
	return dir, nil
}

// WriteManifest writes mf as manifest.json inside dir.
func (r *ResultDir) WriteManifest(dir string, mf domain.RunManifest) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := filepath.Join(dir, "manifest.json")
	if err := writeJSON(path, mf); err != nil {
		return "", err
	}
	return path, nil
}

// WriteHistory writes the response series as history.csv inside dir: one
// sample per row, time first, then displacement, acceleration and force
// per story.
func (r *ResultDir) WriteHistory(dir string, h *domain.History) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	head := []string{"time_s"}
	for s := 1; s <= h.Stories(); s++ {
		head = append(head, fmt.Sprintf("disp%d_m", s))
	}
	for s := 1; s <= h.Stories(); s++ {
		head = append(head, fmt.Sprintf("accel%d_ms2", s))
	}
	for s := 1; s <= h.Stories(); s++ {
		head = append(head, fmt.Sprintf("force%d_kn", s))
	}
	if err := w.Write(head); err != nil {
		return "", err
	}

	row := make([]string, 0, len(head))
	for i := range h.Time {
		row = row[:0]
		row = append(row, formatSample(h.Time[i]))
		for s := 0; s < h.Stories(); s++ {
			row = append(row, formatSample(h.Disp[s][i]))
		}
		for s := 0; s < h.Stories(); s++ {
			row = append(row, formatSample(h.Accel[s][i]))
		}
		for s := 0; s < h.Stories(); s++ {
			row = append(row, formatSample(h.Force[s][i]))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("encode history: %w", err)
	}

	path := filepath.Join(dir, "history.csv")
	if err := writeFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func formatSample(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
