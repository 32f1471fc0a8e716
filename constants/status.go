package constants

// JobStatus is the canonical status for rows in upload_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusPending    JobStatus = "PENDING"    // accepted, no chunk merged yet
	JobStatusProcessing JobStatus = "PROCESSING" // at least one chunk merged
	JobStatusCompleted  JobStatus = "COMPLETED"  // every chunk reported
	JobStatusFailed     JobStatus = "FAILED"     // terminal failure
)

// IsTerminal reports whether s admits no further transitions.
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// JobType selects the scoring model a job runs against.
type JobType string

const (
	JobTypeAnnual    JobType = "ANNUAL"
	JobTypeQuarterly JobType = "QUARTERLY"
)

var jobTypes = map[JobType]struct{}{
	JobTypeAnnual:    {},
	JobTypeQuarterly: {},
}

// ValidJobType reports whether t is a known job type.
func ValidJobType(t JobType) bool {
	_, ok := jobTypes[t]
	return ok
}

// JobTypeStrings returns the stable DB values for schema validators.
func JobTypeStrings() []string {
	return []string{string(JobTypeAnnual), string(JobTypeQuarterly)}
}

// JobStatusStrings returns the stable DB values for schema validators.
func JobStatusStrings() []string {
	return []string{
		string(JobStatusPending),
		string(JobStatusProcessing),
		string(JobStatusCompleted),
		string(JobStatusFailed),
	}
}
