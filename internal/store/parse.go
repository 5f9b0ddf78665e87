package store

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"drift/internal/domain"
)

// ParseRecord picks the parser from the file extension: .at2 files carry
// their own header, everything else is read as a plain-text history with the
// supplied time step and unit.
func ParseRecord(path string, dt float64, unitName string, r io.Reader) (domain.GroundMotion, error) {
	name := RecordName(path)
	if strings.EqualFold(filepath.Ext(path), ".at2") {
		return ParseAT2(name, r)
	}
	return ParseTH(name, dt, unitName, r)
}

// RecordName derives the library name of a record from its file path.
func RecordName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ParseAT2 reads a PEER strong-motion record: header lines, the last of which
// declares the sample count and time step ("NPTS= 4096, DT= .0100 SEC"),
// followed by acceleration samples in g wrapped over several columns.
func ParseAT2(name string, r io.Reader) (domain.GroundMotion, error) {
	sc := newLineScanner(r)

	var (
		npts   int
		dt     float64
		header bool
		accel  []float64
	)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !header {
			if n, d, ok := parseAT2Header(line); ok {
				npts, dt, header = n, d, true
			}
			continue
		}
		for _, tok := range strings.Fields(line) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return domain.GroundMotion{}, fmt.Errorf("record %q: bad sample %q: %w", name, tok, err)
			}
			accel = append(accel, v)
		}
	}
	if err := sc.Err(); err != nil {
		return domain.GroundMotion{}, fmt.Errorf("record %q: %w", name, err)
	}
	if !header {
		return domain.GroundMotion{}, fmt.Errorf("record %q: no NPTS/DT header line", name)
	}
	if len(accel) != npts {
		return domain.GroundMotion{}, fmt.Errorf("record %q: header declares %d points, found %d", name, npts, len(accel))
	}

	gm := domain.GroundMotion{Name: name, DT: dt, Unit: domain.UnitG, Accel: accel}
	if err := gm.Validate(); err != nil {
		return domain.GroundMotion{}, err
	}
	return gm, nil
}

// parseAT2Header extracts NPTS and DT from a header line. PEER files vary in
// spacing and comma placement, so the line is tokenized around '=' and ','.
func parseAT2Header(line string) (npts int, dt float64, ok bool) {
	upper := strings.ToUpper(line)
	if !strings.Contains(upper, "NPTS") || !strings.Contains(upper, "DT") {
		return 0, 0, false
	}
	fields := strings.FieldsFunc(upper, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ',' || r == '='
	})
	var haveN, haveDT bool
	for i := 0; i < len(fields)-1; i++ {
		switch fields[i] {
		case "NPTS":
			if n, err := strconv.Atoi(fields[i+1]); err == nil {
				npts, haveN = n, true
			}
		case "DT":
			if d, err := strconv.ParseFloat(fields[i+1], 64); err == nil {
				dt, haveDT = d, true
			}
		}
	}
	return npts, dt, haveN && haveDT
}

// ParseTH reads a plain-text acceleration history: whitespace-separated
// samples, any number per line, '#' lines ignored. The format carries no
// time step or unit, so both come from the caller.
func ParseTH(name string, dt float64, unitName string, r io.Reader) (domain.GroundMotion, error) {
	sc := newLineScanner(r)

	var accel []float64
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		for _, tok := range strings.Fields(line) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return domain.GroundMotion{}, fmt.Errorf("record %q: bad sample %q: %w", name, tok, err)
			}
			accel = append(accel, v)
		}
	}
	if err := sc.Err(); err != nil {
		return domain.GroundMotion{}, fmt.Errorf("record %q: %w", name, err)
	}

	gm := domain.GroundMotion{Name: name, DT: dt, Unit: unitName, Accel: accel}
	if err := gm.Validate(); err != nil {
		return domain.GroundMotion{}, err
	}
	return gm, nil
}

// newLineScanner allows lines well beyond the bufio default, which some
// digitized records exceed.
func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return sc
}
