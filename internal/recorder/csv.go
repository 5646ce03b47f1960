package recorder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"StockScribe/internal/model"
)

// CSVRecorder appends one comma-joined line per record to
// <ticker>_stock_data.csv under its directory. The header line is written
// only when the file does not exist yet, so a file accumulates history
// across runs. Fields are joined verbatim, without quoting.
type CSVRecorder struct {
	dir string
	mu  sync.Mutex
}

// NewCSVRecorder creates the output directory if needed and returns a
// recorder rooted there.
func NewCSVRecorder(dir string) (*CSVRecorder, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	zap.S().Infow("csv recorder opened", "dir", dir)
	return &CSVRecorder{dir: dir}, nil
}

// Path returns the file a ticker's records land in.
func (r *CSVRecorder) Path(ticker string) string {
	return filepath.Join(r.dir, ticker+"_stock_data.csv")
}

// Append writes rec as one line, preceded by the header when the file is
// new. Empty records are logged and skipped.
func (r *CSVRecorder) Append(ticker string, rec model.Summary) error {
	if rec.Empty() {
		zap.S().Warnw("nothing to record", "ticker", ticker)
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.Path(ticker)
	_, statErr := os.Stat(path)
	needHeader := statErr != nil

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var b strings.Builder
	if needHeader {
		b.WriteString(strings.Join(model.SummaryHeader, ","))
		b.WriteByte('\n')
	}
	b.WriteString(strings.Join(rec.Values(), ","))
	b.WriteByte('\n')

	if _, err := f.WriteString(b.String()); err != nil {
		return fmt.Errorf("append %s: %w", path, err)
	}
	return nil
}

// Reset removes the per-ticker files so the next Append starts a fresh
// history. Missing files are fine.
func (r *CSVRecorder) Reset(tickers []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range tickers {
		path := r.Path(t)
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return fmt.Errorf("remove %s: %w", path, err)
		}
		zap.S().Infow("removed previous data file", "path", path)
	}
	return nil
}

func (r *CSVRecorder) Close() error { return nil }
