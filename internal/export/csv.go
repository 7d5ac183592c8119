package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

var csvHeader = []string{
	"rank", "title", "company", "location", "board",
	"posted_at", "job_level", "keyword_matches", "url",
}

// CSVWriter saves the report as a timestamped CSV file in a directory.
type CSVWriter struct {
	dir string
}

func NewCSVWriter(dir string) *CSVWriter {
	return &CSVWriter{dir: dir}
}

func (cw *CSVWriter) WriteReport(r Report) error {
	if err := os.MkdirAll(cw.dir, 0o755); err != nil {
		return fmt.Errorf("csv: creating output directory: %w", err)
	}

	path := filepath.Join(cw.dir, r.GeneratedAt.Format("job_results_20060102_150405")+".csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csv: creating file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("csv: writing header: %w", err)
	}
	for _, p := range r.Postings {
		row := []string{
			strconv.Itoa(p.Rank), p.Title, p.Company, p.Location, p.Board,
			p.PostedAtDisplay(), p.JobLevel, p.KeywordList(), p.URL,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("csv: writing row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("csv: flushing: %w", err)
	}
	return nil
}
