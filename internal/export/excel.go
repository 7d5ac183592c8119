package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/xuri/excelize/v2"
)

const (
	postingsSheet = "German Job Postings"
	summarySheet  = "Summary"
)

var excelColumns = []struct {
	header string
	width  float64
}{
	{"Rank", 6},
	{"Title", 45},
	{"Company", 25},
	{"Location", 20},
	{"Board", 14},
	{"Posted", 18},
	{"Job Level", 20},
	{"Keyword Matches", 35},
	{"URL", 60},
}

// ExcelWriter saves the report as a styled workbook with a postings sheet
// and a summary sheet.
type ExcelWriter struct {
	dir string
}

func NewExcelWriter(dir string) *ExcelWriter {
	return &ExcelWriter{dir: dir}
}

func (ew *ExcelWriter) WriteReport(r Report) error {
	if err := os.MkdirAll(ew.dir, 0o755); err != nil {
		return fmt.Errorf("excel: creating output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", postingsSheet); err != nil {
		return fmt.Errorf("excel: naming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("excel: creating header style: %w", err)
	}

	for i, col := range excelColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("excel: header cell name: %w", err)
		}
		if err := f.SetCellValue(postingsSheet, cell, col.header); err != nil {
			return fmt.Errorf("excel: writing header: %w", err)
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("excel: column name: %w", err)
		}
		if err := f.SetColWidth(postingsSheet, name, name, col.width); err != nil {
			return fmt.Errorf("excel: setting column width: %w", err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(excelColumns), 1)
	if err := f.SetCellStyle(postingsSheet, "A1", last, headerStyle); err != nil {
		return fmt.Errorf("excel: styling header: %w", err)
	}

	for i, p := range r.Postings {
		row := i + 2
		values := []interface{}{
			p.Rank, p.Title, p.Company, p.Location, p.Board,
			p.PostedAtDisplay(), p.JobLevel, p.KeywordList(), p.URL,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, row)
			if err != nil {
				return fmt.Errorf("excel: cell name: %w", err)
			}
			if err := f.SetCellValue(postingsSheet, cell, v); err != nil {
				return fmt.Errorf("excel: writing row %d: %w", row, err)
			}
		}
		if p.URL != "" {
			cell, _ := excelize.CoordinatesToCellName(len(excelColumns), row)
			if err := f.SetCellHyperLink(postingsSheet, cell, p.URL, "External"); err != nil {
				return fmt.Errorf("excel: setting hyperlink: %w", err)
			}
		}
	}

	// Keep the header visible while scrolling.
	if err := f.SetPanes(postingsSheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return fmt.Errorf("excel: freezing header row: %w", err)
	}

	if err := ew.writeSummary(f, r); err != nil {
		return err
	}

	path := filepath.Join(ew.dir, r.GeneratedAt.Format("job_results_20060102_150405")+".xlsx")
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("excel: saving workbook: %w", err)
	}
	return nil
}

func (ew *ExcelWriter) writeSummary(f *excelize.File, r Report) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("excel: creating summary sheet: %w", err)
	}

	rows := [][]interface{}{
		{"Generated", r.GeneratedAt.Format("02.01.2006 15:04")},
		{"Window (hours)", r.WindowHours},
		{"Postings scraped", r.TotalFound},
		{"Postings matched", len(r.Postings)},
	}

	counts := r.BoardCounts()
	boards := make([]string, 0, len(counts))
	for b := range counts {
		boards = append(boards, b)
	}
	sort.Strings(boards)
	for _, b := range boards {
		rows = append(rows, []interface{}{"Matches from " + b, counts[b]})
	}

	for i, row := range rows {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("excel: summary cell name: %w", err)
			}
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return fmt.Errorf("excel: writing summary: %w", err)
			}
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 24); err != nil {
		return fmt.Errorf("excel: summary column width: %w", err)
	}
	return nil
}
