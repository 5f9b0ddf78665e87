package motion_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"drift/internal/domain"
	"drift/internal/services/motion"
	"drift/internal/store"
)

func newService(t *testing.T, arch domain.ArchiveClient) *motion.Service {
	t.Helper()
	lib, err := store.NewRecordLibrary(t.TempDir())
	require.NoError(t, err)
	return motion.New(lib, arch, zap.NewNop().Sugar())
}

type fakeArchive struct {
	recs map[string]domain.GroundMotion
}

func (f fakeArchive) List(context.Context) ([]domain.RecordInfo, error) {
	var out []domain.RecordInfo
	for _, gm := range f.recs {
		out = append(out, domain.RecordInfo{Name: gm.Name, DT: gm.DT, Points: gm.Points(), Unit: gm.Unit})
	}
	return out, nil
}

func (f fakeArchive) Fetch(_ context.Context, name string) (domain.GroundMotion, error) {
	gm, ok := f.recs[name]
	if !ok {
		return domain.GroundMotion{}, fmt.Errorf("record %q not in archive", name)
	}
	return gm, nil
}

func TestService_Import_PlainText(t *testing.T) {
	svc := newService(t, nil)

	path := filepath.Join(t.TempDir(), "pulse.th")
	require.NoError(t, os.WriteFile(path, []byte("0.0 0.1 -0.2 0.1 0.0\n"), 0o644))

	gm, err := svc.Import(path, 0.02, domain.UnitG)
	require.NoError(t, err)
	assert.Equal(t, "pulse", gm.Name)
	assert.Equal(t, 5, gm.Points())

	loaded, err := svc.Load("pulse")
	require.NoError(t, err)
	assert.Equal(t, gm.Accel, loaded.Accel)
}

func TestService_Import_AT2HeaderWins(t *testing.T) {
	svc := newService(t, nil)

	path := filepath.Join(t.TempDir(), "elc.at2")
	const at2 = "TITLE\nACCELERATION IN G\nNPTS= 4, DT= .0100 SEC\n .1 -.2 .3 -.4\n"
	require.NoError(t, os.WriteFile(path, []byte(at2), 0o644))

	gm, err := svc.Import(path, 0.5, domain.UnitMS2)
	require.NoError(t, err)
	assert.Equal(t, 0.01, gm.DT, "header dt wins over the argument")
	assert.Equal(t, domain.UnitG, gm.Unit)
	assert.Equal(t, 4, gm.Points())
}

func TestService_Fetch_StoresRecord(t *testing.T) {
	rec := domain.GroundMotion{Name: "kobe", DT: 0.02, Unit: domain.UnitG, Accel: []float64{0, 0.3, -0.5}}
	svc := newService(t, fakeArchive{recs: map[string]domain.GroundMotion{"kobe": rec}})

	_, err := svc.Fetch(context.Background(), "kobe")
	require.NoError(t, err)

	infos, err := svc.List()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "kobe", infos[0].Name)
}

func TestService_Fetch_MissingRecord_Fails(t *testing.T) {
	svc := newService(t, fakeArchive{})

	_, err := svc.Fetch(context.Background(), "nope")
	require.Error(t, err)
}

func TestService_Checksum_IgnoresName(t *testing.T) {
	svc := newService(t, nil)

	a := domain.GroundMotion{Name: "a", DT: 0.02, Unit: domain.UnitG, Accel: []float64{0, 0.1}}
	b := a
	b.Name = "b"

	ca, err := svc.Checksum(a)
	require.NoError(t, err)
	cb, err := svc.Checksum(b)
	require.NoError(t, err)
	assert.Equal(t, ca, cb, "renaming must not change the fingerprint")
	assert.Len(t, ca, 64)

	b.Accel = []float64{0, 0.2}
	cc, err := svc.Checksum(b)
	require.NoError(t, err)
	assert.NotEqual(t, ca, cc, "different samples must change the fingerprint")
}
