// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnnualPrediction is the predicate function for annualprediction builders.
type AnnualPrediction func(*sql.Selector)

// ChunkReport is the predicate function for chunkreport builders.
type ChunkReport func(*sql.Selector)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)

// QuarterlyPrediction is the predicate function for quarterlyprediction builders.
type QuarterlyPrediction func(*sql.Selector)

// UploadJob is the predicate function for uploadjob builders.
type UploadJob func(*sql.Selector)
