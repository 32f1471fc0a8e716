package bulk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/internal/entity"
)

func TestDecodeChunkPayloadRoundTrip(t *testing.T) {
	rows := []entity.UploadRow{
		quarterlyRow(0, "AAA", 2020, 1),
		quarterlyRow(1, "BBB", 2020, 3),
	}
	rows[1].Ratios[constants.RatioROA] = "NM"
	raw, err := EncodeChunkPayload(&ChunkPayload{
		JobType: constants.JobTypeQuarterly,
		Scope:   systemScope(),
		Rows:    rows,
	})
	require.NoError(t, err)

	p, err := DecodeChunkPayload(raw)
	require.NoError(t, err)
	assert.Equal(t, constants.JobTypeQuarterly, p.JobType)
	require.Len(t, p.Rows, 2)
	assert.Equal(t, "NM", p.Rows[1].Ratios[constants.RatioROA])
}

func TestDecodeChunkPayloadRejectsGarbage(t *testing.T) {
	cases := map[string]string{
		"not json":         `{"job_type":`,
		"unknown job type": `{"job_type":"MONTHLY","scope":{"type":"SYSTEM","scope_id":"00000000-0000-0000-0000-000000000000"},"rows":[{"row_index":0,"symbol":"A","year":2019,"ratios":{}}]}`,
		"missing rows":     `{"job_type":"ANNUAL","scope":{"type":"SYSTEM","scope_id":"00000000-0000-0000-0000-000000000000"}}`,
		"empty rows":       `{"job_type":"ANNUAL","scope":{"type":"SYSTEM","scope_id":"00000000-0000-0000-0000-000000000000"},"rows":[]}`,
		"ratio not text":   `{"job_type":"ANNUAL","scope":{"type":"SYSTEM","scope_id":"00000000-0000-0000-0000-000000000000"},"rows":[{"row_index":0,"symbol":"A","year":2019,"ratios":{"roa":0.1}}]}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeChunkPayload([]byte(raw))
			require.Error(t, err)
		})
	}
}
