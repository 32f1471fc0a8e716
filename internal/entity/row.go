package entity

// UploadRow is one parsed row of an upload, as carried inside a chunk
// payload. Ratio values stay raw cell text until the executor parses them:
// an absent or empty value means the ratio was not supplied, while
// non-numeric text such as "NM" is a present-but-not-meaningful sentinel.
type UploadRow struct {
	RowIndex  int               `json:"row_index"` // 0-based position in the upload
	Symbol    string            `json:"symbol"`
	Name      string            `json:"name,omitempty"`
	Sector    string            `json:"sector,omitempty"`
	MarketCap *float64          `json:"market_cap,omitempty"`
	Year      int               `json:"year"`
	Quarter   int               `json:"quarter,omitempty"` // 1..4, zero for annual rows
	Ratios    map[string]string `json:"ratios"`
}
