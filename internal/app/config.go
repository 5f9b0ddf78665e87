package app

import "go.uber.org/zap"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string             // data directory, e.g. $HOME/.drift
	ArchiveURL string             // archive base URL, e.g. http://127.0.0.1:8025
	Logger     *zap.SugaredLogger // optional; defaults to a no-op logger
}
