package models

// AnalysisResult stores the LLM's compatibility verdict for one application.
// The unique index on ApplicationID makes the at-most-one relationship an
// atomic check-and-set at the storage layer: a racing second writer fails on
// the constraint instead of slipping past an application-level check.
type AnalysisResult struct {
	ID                  int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	ApplicationID       int64   `json:"application_id" gorm:"not null;uniqueIndex"`
	CompatibilityScore  float64 `json:"compatibility_score" gorm:"type:numeric(5,2);not null"`
	CompatibilityReason string  `json:"compatibility_reason" gorm:"type:text;not null"`
}

// TableName returns the table name for AnalysisResult
func (AnalysisResult) TableName() string {
	return "analysis_results"
}
