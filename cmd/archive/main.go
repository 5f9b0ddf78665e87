package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"time"

	"go.uber.org/zap"

	"drift/internal/domain"
	"drift/internal/store"
)

func main() {
	addr := flag.String("addr", ":8025", "listen address")
	dir := flag.String("dir", "records", "record library directory to serve")
	flag.Parse()

	zl, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	log := zl.Sugar()

	lib, err := store.NewRecordLibrary(*dir)
	if err != nil {
		log.Fatalw("open record library", "err", err)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/records", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			infos, err := lib.List()
			if err != nil {
				http.Error(w, err.Error(), 500)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(infos)
		case http.MethodPost:
			defer r.Body.Close()
			var gm domain.GroundMotion
			if err := json.NewDecoder(r.Body).Decode(&gm); err != nil {
				http.Error(w, err.Error(), 400)
				return
			}
			if err := lib.Save(gm); err != nil {
				http.Error(w, err.Error(), 400)
				return
			}
			log.Infow("stored record", "name", gm.Name, "points", gm.Points())
			w.WriteHeader(200)
		default:
			http.Error(w, "method not allowed", 405)
		}
	})

	mux.HandleFunc("/records/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", 405)
			return
		}
		name := r.URL.Path[len("/records/"):]
		gm, err := lib.Load(name)
		if err != nil {
			http.Error(w, "not found", 404)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(gm)
	})

	log.Infow("archive listening", "addr", *addr, "dir", lib.Dir())
	log.Fatal(http.ListenAndServe(*addr, logRequests(log, mux)))
}

// logRequests records method, path, remote and duration for each request.
func logRequests(log *zap.SugaredLogger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Infow("request",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
			"elapsed", time.Since(start))
	})
}
