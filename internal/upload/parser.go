// Package upload turns XLSX workbooks into the row slices the bulk
// service accepts. Parsing is deliberately lenient about cell contents:
// the chunk executor owns row-level validation, so the parser's only
// hard failures are structural (unreadable file, no usable header).
package upload

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/internal/entity"
)

// Well-known identity columns. Anything else in the header row is
// treated as a ratio column if its normalized name matches a canonical
// ratio, and ignored otherwise.
const (
	colSymbol    = "symbol"
	colName      = "name"
	colSector    = "sector"
	colMarketCap = "market_cap"
	colYear      = "year"
	colQuarter   = "quarter"
)

// ParseFile reads the workbook at path.
func ParseFile(path string) ([]entity.UploadRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads an XLSX workbook from r. The first sheet is the data
// sheet; the first row is the header. Rows with no symbol and no year
// are skipped as blank rather than reported.
func Parse(r io.Reader) ([]entity.UploadRow, error) {
	wb, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("read workbook: %w", err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	cells, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	cols, err := mapHeader(cells[0])
	if err != nil {
		return nil, err
	}

	rows := make([]entity.UploadRow, 0, len(cells)-1)
	for _, raw := range cells[1:] {
		row, blank := buildRow(cols, raw, len(rows))
		if blank {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// columnMap records which workbook column feeds which row field.
type columnMap struct {
	fields map[string]int // identity column -> index
	ratios map[string]int // canonical ratio name -> index
}

func mapHeader(header []string) (*columnMap, error) {
	known := map[string]bool{
		colSymbol: true, colName: true, colSector: true,
		colMarketCap: true, colYear: true, colQuarter: true,
	}
	ratioNames := map[string]bool{}
	for _, name := range constants.AnnualRatios {
		ratioNames[name] = true
	}

	cols := &columnMap{fields: map[string]int{}, ratios: map[string]int{}}
	for i, h := range header {
		name := normalizeHeader(h)
		switch {
		case known[name]:
			cols.fields[name] = i
		case ratioNames[name]:
			cols.ratios[name] = i
		}
	}
	if _, ok := cols.fields[colSymbol]; !ok {
		return nil, fmt.Errorf("header has no %q column", colSymbol)
	}
	if _, ok := cols.fields[colYear]; !ok {
		return nil, fmt.Errorf("header has no %q column", colYear)
	}
	if len(cols.ratios) == 0 {
		return nil, fmt.Errorf("header has no ratio columns")
	}
	return cols, nil
}

// normalizeHeader folds "Market Cap", "market-cap" and "MARKET_CAP" into
// the same key.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.ReplaceAll(h, " ", "_")
	h = strings.ReplaceAll(h, "-", "_")
	return h
}

func buildRow(cols *columnMap, raw []string, index int) (entity.UploadRow, bool) {
	cell := func(name string) string {
		i, ok := cols.fields[name]
		if !ok || i >= len(raw) {
			return ""
		}
		return strings.TrimSpace(raw[i])
	}

	row := entity.UploadRow{
		RowIndex: index,
		Symbol:   cell(colSymbol),
		Name:     cell(colName),
		Sector:   cell(colSector),
		Ratios:   map[string]string{},
	}
	if v := cell(colYear); v != "" {
		// bad year text stays zero and fails row validation downstream
		row.Year, _ = strconv.Atoi(v)
	}
	if row.Symbol == "" && row.Year == 0 {
		return entity.UploadRow{}, true
	}
	if v := cell(colQuarter); v != "" {
		row.Quarter, _ = strconv.Atoi(v)
	}
	if v := cell(colMarketCap); v != "" {
		if mc, err := strconv.ParseFloat(v, 64); err == nil {
			row.MarketCap = &mc
		}
	}
	for name, i := range cols.ratios {
		if i >= len(raw) {
			continue
		}
		if v := strings.TrimSpace(raw[i]); v != "" {
			row.Ratios[name] = v
		}
	}
	return row, false
}
