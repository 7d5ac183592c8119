package export

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
)

// ConsolePrinter writes the report to stdout in a formatted table.
type ConsolePrinter struct{}

func NewConsolePrinter() *ConsolePrinter {
	return &ConsolePrinter{}
}

func (cp *ConsolePrinter) WriteReport(r Report) error {
	if len(r.Postings) == 0 {
		fmt.Printf("No matching postings in the last %d hours.\n", r.WindowHours)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tTITLE\tCOMPANY\tLOCATION\tBOARD\tPOSTED\tKEYWORDS\tURL")
	fmt.Fprintln(w, "----\t-----\t-------\t--------\t-----\t------\t--------\t---")
	for _, p := range r.Postings {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Rank, p.Title, p.Company, p.Location, p.Board,
			p.PostedAtDisplay(), p.KeywordList(), p.URL)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	counts := r.BoardCounts()
	boards := make([]string, 0, len(counts))
	for b := range counts {
		boards = append(boards, b)
	}
	sort.Strings(boards)

	fmt.Printf("\n%d of %d scraped postings matched (last %d hours):\n",
		len(r.Postings), r.TotalFound, r.WindowHours)
	for _, b := range boards {
		fmt.Printf("  %s: %d\n", b, counts[b])
	}
	return nil
}
