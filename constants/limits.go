package constants

// Upload and job sizing limits. Chunk and sub-batch sizes are defaults;
// both are overridable through configuration.
const (
	MaxUploadRows    = 50000 // hard cap per submission, no partial acceptance
	DefaultChunkSize = 500   // rows per chunk task
	DefaultSubBatch  = 50    // rows per prediction insert transaction
	MaxErrorDetails  = 100   // row errors retained on the job record
)
