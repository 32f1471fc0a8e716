package constants

// RiskLevel classifies a default probability into the four reporting tiers.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// RiskLevelStrings returns the stable DB values for schema validators.
func RiskLevelStrings() []string {
	return []string{
		string(RiskLow),
		string(RiskMedium),
		string(RiskHigh),
		string(RiskCritical),
	}
}
