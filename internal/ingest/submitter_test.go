package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seyi-adeleke/riskscore/constants"
)

func TestJobTypeForPath(t *testing.T) {
	cases := []struct {
		path string
		want constants.JobType
		ok   bool
	}{
		{"/drop/annual_2019.xlsx", constants.JobTypeAnnual, true},
		{"/drop/Quarterly-Q3.xlsx", constants.JobTypeQuarterly, true},
		{"/drop/ANNUAL.xlsx", constants.JobTypeAnnual, true},
		{"/drop/ratios.xlsx", "", false},
	}
	for _, tc := range cases {
		got, ok := JobTypeForPath(tc.path)
		assert.Equal(t, tc.ok, ok, tc.path)
		assert.Equal(t, tc.want, got, tc.path)
	}
}

func TestAllowedFiltersLockAndHiddenFiles(t *testing.T) {
	exts := map[string]struct{}{"xlsx": {}}
	assert.True(t, allowed("/drop/annual.xlsx", exts))
	assert.True(t, allowed("/drop/Annual.XLSX", exts))
	assert.False(t, allowed("/drop/~$annual.xlsx", exts))
	assert.False(t, allowed("/drop/.annual.xlsx", exts))
	assert.False(t, allowed("/drop/annual.csv", exts))
}
