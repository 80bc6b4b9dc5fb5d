package models

// RiskLevel represents a patient's clinical risk stratification.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Patient represents a patient record. Records are created at seed time;
// onboarding new patients is outside this server's scope.
type Patient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	DOB       string    `json:"dob"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	RiskLevel RiskLevel `json:"riskLevel"`
	Notes     string    `json:"notes"`
}
