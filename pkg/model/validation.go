package model

// CheckStatus is the outcome of one validation check.
type CheckStatus string

const (
	CheckPass    CheckStatus = "pass"
	CheckWarning CheckStatus = "warning"
	CheckFail    CheckStatus = "fail"
)

// Severity orders statuses so the most severe one wins: fail > warning > pass.
func (s CheckStatus) Severity() int {
	switch s {
	case CheckFail:
		return 2
	case CheckWarning:
		return 1
	default:
		return 0
	}
}

// ValidationCheck is one named, independently computed assessment.
type ValidationCheck struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Status      CheckStatus `json:"status"`
	Details     string      `json:"details"`
}

// ValidationResult carries the checks and their reduced status. Build it with
// NewValidationResult so OverallStatus always derives from Checks.
type ValidationResult struct {
	Checks        []ValidationCheck `json:"checks"`
	OverallStatus CheckStatus       `json:"overallStatus"`
}

// NewValidationResult reduces checks to their most severe status. An empty
// check list passes.
func NewValidationResult(checks []ValidationCheck) ValidationResult {
	overall := CheckPass
	for _, check := range checks {
		if check.Status.Severity() > overall.Severity() {
			overall = check.Status
		}
	}
	return ValidationResult{Checks: checks, OverallStatus: overall}
}

// Check returns the check with the given id.
func (r ValidationResult) Check(id string) (ValidationCheck, bool) {
	for _, check := range r.Checks {
		if check.ID == id {
			return check, true
		}
	}
	return ValidationCheck{}, false
}
