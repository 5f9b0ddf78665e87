package store_test

import (
	"strings"
	"testing"

	"drift/internal/domain"
	"drift/internal/store"
)

const sampleAT2 = `PEER NGA STRONG MOTION DATABASE RECORD
IMPERIAL VALLEY 10/15/79 2319, EL CENTRO ARRAY #6, 230
ACCELERATION TIME SERIES IN UNITS OF G
NPTS=    8, DT= .0200 SEC
  .10000E-01  -.20000E-01   .30000E-01  -.40000E-01   .50000E-01
 -.60000E-01   .70000E-01  -.80000E-01
`

func TestParseAT2_ReadsHeaderAndSamples(t *testing.T) {
	gm, err := store.ParseAT2("elc230", strings.NewReader(sampleAT2))
	if err != nil {
		t.Fatalf("parse at2: %v", err)
	}
	if gm.Name != "elc230" {
		t.Fatalf("name = %q, want elc230", gm.Name)
	}
	if gm.DT != 0.02 {
		t.Fatalf("dt = %g, want 0.02", gm.DT)
	}
	if gm.Unit != domain.UnitG {
		t.Fatalf("unit = %q, want %q", gm.Unit, domain.UnitG)
	}
	if gm.Points() != 8 {
		t.Fatalf("points = %d, want 8", gm.Points())
	}
	if gm.Accel[0] != 0.01 || gm.Accel[7] != -0.08 {
		t.Fatalf("unexpected samples %v", gm.Accel)
	}
}

func TestParseAT2_CountMismatch_Fails(t *testing.T) {
	const short = `HEADER
NPTS= 5, DT= .0100 SEC
 .1 .2 .3 .4
`
	if _, err := store.ParseAT2("short", strings.NewReader(short)); err == nil {
		t.Fatal("expected error for sample count mismatch")
	}
}

func TestParseAT2_MissingHeader_Fails(t *testing.T) {
	const headless = ` .1 .2 .3 .4
`
	if _, err := store.ParseAT2("headless", strings.NewReader(headless)); err == nil {
		t.Fatal("expected error for missing NPTS/DT header")
	}
}

func TestParseTH_ReadsWrappedSamples(t *testing.T) {
	const th = `# synthetic pulse
 0.0  0.1  0.2

 0.1  0.0
`
	gm, err := store.ParseTH("pulse", 0.02, domain.UnitG, strings.NewReader(th))
	if err != nil {
		t.Fatalf("parse th: %v", err)
	}
	if gm.Points() != 5 {
		t.Fatalf("points = %d, want 5", gm.Points())
	}
	if gm.DT != 0.02 || gm.Unit != domain.UnitG {
		t.Fatalf("dt = %g unit = %q", gm.DT, gm.Unit)
	}
	if gm.Accel[2] != 0.2 || gm.Accel[4] != 0 {
		t.Fatalf("unexpected samples %v", gm.Accel)
	}
}

func TestParseTH_BadSample_Fails(t *testing.T) {
	if _, err := store.ParseTH("bad", 0.02, domain.UnitG, strings.NewReader("0.1 oops 0.2")); err == nil {
		t.Fatal("expected error for non-numeric sample")
	}
}

func TestParseRecord_PicksParserByExtension(t *testing.T) {
	gm, err := store.ParseRecord("motions/elc230.AT2", 0, "", strings.NewReader(sampleAT2))
	if err != nil {
		t.Fatalf("parse .AT2: %v", err)
	}
	if gm.Name != "elc230" || gm.DT != 0.02 {
		t.Fatalf("at2 dispatch gave name %q dt %g", gm.Name, gm.DT)
	}

	gm, err = store.ParseRecord("motions/pulse.th", 0.01, domain.UnitMS2, strings.NewReader("0.1 0.2"))
	if err != nil {
		t.Fatalf("parse .th: %v", err)
	}
	if gm.Name != "pulse" || gm.DT != 0.01 || gm.Unit != domain.UnitMS2 {
		t.Fatalf("th dispatch gave %+v", gm)
	}
}

func TestRecordName_StripsDirAndExtension(t *testing.T) {
	if got := store.RecordName("/data/motions/el_centro.th"); got != "el_centro" {
		t.Fatalf("record name = %q, want el_centro", got)
	}
}
