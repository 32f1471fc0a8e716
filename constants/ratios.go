package constants

// Canonical ratio names. Upload headers and model artifacts both use these
// exact keys; anything else in a workbook is ignored.
const (
	RatioROA              = "roa"
	RatioDebtRatio        = "debt_ratio"
	RatioCurrentRatio     = "current_ratio"
	RatioInterestCoverage = "interest_coverage"
	RatioOperatingMargin  = "operating_margin"
)

// AnnualRatios is the full feature set the annual model requires.
var AnnualRatios = []string{
	RatioROA,
	RatioDebtRatio,
	RatioCurrentRatio,
	RatioInterestCoverage,
	RatioOperatingMargin,
}

// QuarterlyRatios is the feature set both quarterly models require.
// Interest coverage is not reported on quarterly statements.
var QuarterlyRatios = []string{
	RatioROA,
	RatioDebtRatio,
	RatioCurrentRatio,
	RatioOperatingMargin,
}

// RequiredRatios returns the ratio names a job type must supply per row.
func RequiredRatios(t JobType) []string {
	if t == JobTypeQuarterly {
		return QuarterlyRatios
	}
	return AnnualRatios
}
