package upload

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/seyi-adeleke/riskscore/constants"
)

func buildWorkbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, cells := range rows {
		for c, v := range cells {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestParseMapsHeadersAndRows(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"Symbol", "Name", "Sector", "Market Cap", "Year", "Quarter", "ROA", "Debt Ratio", "current_ratio", "interest_coverage", "operating_margin", "ignored"},
		{"aapl", "Apple Inc", "Technology", 2800000000000.0, 2019, "", 0.16, 0.31, 1.54, 22.1, 0.29, "x"},
		{"XOM", "Exxon Mobil", "Energy", "", 2019, 4, "NM", 0.42, 0.9, 3.3, 0.07, ""},
	})

	rows, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, 0, first.RowIndex)
	assert.Equal(t, "aapl", first.Symbol) // normalization happens at resolve time
	assert.Equal(t, "Apple Inc", first.Name)
	assert.Equal(t, "Technology", first.Sector)
	require.NotNil(t, first.MarketCap)
	assert.InDelta(t, 2.8e12, *first.MarketCap, 1)
	assert.Equal(t, 2019, first.Year)
	assert.Equal(t, 0, first.Quarter)
	assert.Equal(t, "0.16", first.Ratios[constants.RatioROA])
	assert.Equal(t, "0.31", first.Ratios[constants.RatioDebtRatio])
	assert.Len(t, first.Ratios, 5)

	second := rows[1]
	assert.Equal(t, 4, second.Quarter)
	assert.Nil(t, second.MarketCap)
	assert.Equal(t, "NM", second.Ratios[constants.RatioROA])
}

func TestParseSkipsBlankRows(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"symbol", "year", "roa"},
		{"AAA", 2019, 0.1},
		{"", "", ""},
		{"BBB", 2020, 0.2},
	})

	rows, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "AAA", rows[0].Symbol)
	assert.Equal(t, 1, rows[1].RowIndex)
	assert.Equal(t, "BBB", rows[1].Symbol)
}

func TestParseKeepsBadCellsForRowValidation(t *testing.T) {
	buf := buildWorkbook(t, [][]any{
		{"symbol", "year", "quarter", "roa"},
		{"AAA", "not-a-year", 2, 0.1},
	})

	rows, err := Parse(buf)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	// unparseable year stays zero so the executor records the row failure
	assert.Equal(t, 0, rows[0].Year)
	assert.Equal(t, "AAA", rows[0].Symbol)
}

func TestParseRejectsMissingHeaders(t *testing.T) {
	cases := map[string][][]any{
		"no symbol": {{"year", "roa"}, {2019, 0.1}},
		"no year":   {{"symbol", "roa"}, {"AAA", 0.1}},
		"no ratios": {{"symbol", "year"}, {"AAA", 2019}},
	}
	for name, grid := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(buildWorkbook(t, grid))
			require.Error(t, err)
		})
	}
}

func TestParseRejectsNonWorkbook(t *testing.T) {
	_, err := Parse(bytes.NewReader([]byte("not an xlsx file")))
	require.Error(t, err)
}
