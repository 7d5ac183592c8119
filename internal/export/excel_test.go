package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExcelWriterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	r := sampleReport()

	require.NoError(t, NewExcelWriter(dir).WriteReport(r))

	path := filepath.Join(dir, "job_results_20250610_120000.xlsx")
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{postingsSheet, summarySheet}, f.GetSheetList())

	title, err := f.GetCellValue(postingsSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Junior Data Engineer", title)

	link, target, err := f.GetCellHyperLink(postingsSheet, "I2")
	require.NoError(t, err)
	assert.True(t, link)
	assert.Equal(t, "https://example.com/jobs/1", target)

	scraped, err := f.GetCellValue(summarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "40", scraped)
}
