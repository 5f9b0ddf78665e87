package archive_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"drift/internal/archive"
	"drift/internal/domain"
)

func newTestArchive(t *testing.T) *httptest.Server {
	t.Helper()

	rec := domain.GroundMotion{
		Name:  "elcentro",
		DT:    0.02,
		Unit:  domain.UnitG,
		Accel: []float64{0, 0.1, -0.2, 0.1},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/records", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.RecordInfo{{
			Name: rec.Name, DT: rec.DT, Points: rec.Points(), Unit: rec.Unit,
		}})
	})
	mux.HandleFunc("/records/", func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/records/")
		if name != rec.Name {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(rec)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_List_OK(t *testing.T) {
	srv := newTestArchive(t)
	var ac domain.ArchiveClient = archive.NewClient(srv.URL)

	infos, err := ac.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(infos) != 1 || infos[0].Name != "elcentro" || infos[0].Points != 4 {
		t.Fatalf("unexpected listing %+v", infos)
	}
}

func TestClient_Fetch_OK(t *testing.T) {
	srv := newTestArchive(t)
	c := archive.NewClient(srv.URL)

	gm, err := c.Fetch(context.Background(), "elcentro")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gm.Name != "elcentro" || gm.DT != 0.02 || gm.Points() != 4 {
		t.Fatalf("unexpected record %+v", gm)
	}
}

func TestClient_FetchMissing_Fails(t *testing.T) {
	srv := newTestArchive(t)
	c := archive.NewClient(srv.URL)

	if _, err := c.Fetch(context.Background(), "nope"); err == nil {
		t.Fatal("expected error for missing record")
	}
}

func TestClient_ServerError_Fails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := archive.NewClient(srv.URL)
	if _, err := c.List(context.Background()); err == nil {
		t.Fatal("expected error on server failure")
	}
}
