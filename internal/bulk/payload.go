package bulk

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/internal/entity"
)

// ChunkPayload is the serialized body of one chunk task. Rows keep their
// position in the original upload so audit fields survive chunking.
type ChunkPayload struct {
	JobType constants.JobType  `json:"job_type"`
	Scope   entity.OwnerScope  `json:"scope"`
	Rows    []entity.UploadRow `json:"rows"`
}

// chunkPayloadSchema rejects structurally corrupt payloads before any row
// work starts; a payload that fails here is a job-fatal error, not a row
// error.
const chunkPayloadSchema = `{
	"type": "object",
	"required": ["job_type", "scope", "rows"],
	"properties": {
		"job_type": {"type": "string", "enum": ["ANNUAL", "QUARTERLY"]},
		"scope": {
			"type": "object",
			"required": ["type", "scope_id"],
			"properties": {
				"type": {"type": "string", "enum": ["PERSONAL", "ORGANIZATION", "SYSTEM"]},
				"scope_id": {"type": "string"}
			}
		},
		"rows": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["row_index", "symbol", "year", "ratios"],
				"properties": {
					"row_index": {"type": "integer", "minimum": 0},
					"symbol": {"type": "string"},
					"year": {"type": "integer"},
					"quarter": {"type": "integer"},
					"ratios": {
						"type": "object",
						"additionalProperties": {"type": "string"}
					}
				}
			}
		}
	}
}`

var compiledPayloadSchema = jsonschema.MustCompileString("chunk_payload.json", chunkPayloadSchema)

// EncodeChunkPayload serializes one chunk's rows for the queue.
func EncodeChunkPayload(p *ChunkPayload) ([]byte, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode chunk payload: %w", err)
	}
	return b, nil
}

// DecodeChunkPayload validates raw bytes against the payload schema and
// unmarshals them.
func DecodeChunkPayload(raw []byte) (*ChunkPayload, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("chunk payload is not valid JSON: %w", err)
	}
	if err := compiledPayloadSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("chunk payload does not match schema: %w", err)
	}
	var p ChunkPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode chunk payload: %w", err)
	}
	return &p, nil
}
