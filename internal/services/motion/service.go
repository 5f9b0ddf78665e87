package motion

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"os"

	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"

	"drift/internal/domain"
	"drift/internal/store"
)

// Service maintains the local record library. Records enter it either from
// files on disk (PEER AT2 or plain text) or from the remote archive; either
// way they are validated before they are stored.
type Service struct {
	records domain.RecordStore
	archive domain.ArchiveClient
	log     *zap.SugaredLogger
}

// New constructs a motion Service over the given library and archive client.
func New(records domain.RecordStore, archive domain.ArchiveClient, log *zap.SugaredLogger) *Service {
	return &Service{
		records: records,
		archive: archive,
		log:     log,
	}
}

// Import parses the record file at path and stores it in the library. dt and
// unitName describe plain-text files; AT2 files carry their own header.
func (s *Service) Import(path string, dt float64, unitName string) (domain.GroundMotion, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.GroundMotion{}, fmt.Errorf("open record file: %w", err)
	}
	defer f.Close()

	gm, err := store.ParseRecord(path, dt, unitName, f)
	if err != nil {
		return domain.GroundMotion{}, err
	}
	if err := s.records.Save(gm); err != nil {
		return domain.GroundMotion{}, err
	}
	s.log.Infow("imported record",
		"name", gm.Name, "points", gm.Points(), "dt", gm.DT, "unit", gm.Unit)
	return gm, nil
}

// Fetch downloads name from the archive and stores it in the library.
func (s *Service) Fetch(ctx context.Context, name string) (domain.GroundMotion, error) {
	gm, err := s.archive.Fetch(ctx, name)
	if err != nil {
		return domain.GroundMotion{}, err
	}
	if err := s.records.Save(gm); err != nil {
		return domain.GroundMotion{}, err
	}
	s.log.Infow("fetched record",
		"name", gm.Name, "points", gm.Points(), "dt", gm.DT, "unit", gm.Unit)
	return gm, nil
}

// Load returns the named record from the library.
func (s *Service) Load(name string) (domain.GroundMotion, error) {
	return s.records.Load(name)
}

// List summarizes the library.
func (s *Service) List() ([]domain.RecordInfo, error) {
	return s.records.List()
}

// Checksum returns the hex BLAKE2b-256 digest of the record's time step,
// unit and samples. The name is deliberately excluded so renames do not
// change the fingerprint.
func (s *Service) Checksum(gm domain.GroundMotion) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", err
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(gm.DT))
	h.Write(buf[:])
	h.Write([]byte(gm.Unit))
	for _, a := range gm.Accel {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(a))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Compile-time assertion that Service implements domain.MotionService.
var _ domain.MotionService = (*Service)(nil)
