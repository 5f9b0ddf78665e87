package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"drift/internal/domain"
)

// RecordLibrary keeps ground-motion records as JSON documents, one file per
// record, under a single directory.
type RecordLibrary struct {
	mu  sync.Mutex
	dir string
}

// interface guard
var _ domain.RecordStore = (*RecordLibrary)(nil)

// NewRecordLibrary opens the library rooted at dir, creating it if needed.
func NewRecordLibrary(dir string) (*RecordLibrary, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create record library %s: %w", dir, err)
	}
	return &RecordLibrary{dir: dir}, nil
}

// Dir returns the library root.
func (l *RecordLibrary) Dir() string { return l.dir }

func (l *RecordLibrary) path(name string) string {
	return filepath.Join(l.dir, name+".json")
}

// Save writes gm to the library, replacing any record of the same name.
func (l *RecordLibrary) Save(gm domain.GroundMotion) error {
	if err := validName(gm.Name); err != nil {
		return err
	}
	if err := gm.Validate(); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return writeJSON(l.path(gm.Name), gm)
}

// Load returns the named record.
func (l *RecordLibrary) Load(name string) (domain.GroundMotion, error) {
	if err := validName(name); err != nil {
		return domain.GroundMotion{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	var gm domain.GroundMotion
	if err := readJSON(l.path(name), &gm); err != nil {
		if os.IsNotExist(err) {
			return domain.GroundMotion{}, fmt.Errorf("record %q not in library %s", name, l.dir)
		}
		return domain.GroundMotion{}, err
	}
	return gm, nil
}

// List summarizes every record in the library, sorted by name.
func (l *RecordLibrary) List() ([]domain.RecordInfo, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("read record library %s: %w", l.dir, err)
	}

	var infos []domain.RecordInfo
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		var gm domain.GroundMotion
		if err := readJSON(filepath.Join(l.dir, e.Name()), &gm); err != nil {
			return nil, err
		}
		infos = append(infos, domain.RecordInfo{
			Name:   gm.Name,
			DT:     gm.DT,
			Points: gm.Points(),
			Unit:   gm.Unit,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos, nil
}

// validName rejects names that would escape the store directory.
func validName(name string) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return fmt.Errorf("invalid record name %q", name)
	}
	return nil
}
