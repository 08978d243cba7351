package models

// SkillScore is an applicant's self-assessment for one technology, created
// atomically with its Application and immutable afterwards. Scores run from
// 1 (beginner) to 10 (expert).
type SkillScore struct {
	ID            int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	ApplicationID int64  `json:"application_id" gorm:"not null;index"`
	TechName      string `json:"tech_name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Score         int    `json:"score" gorm:"not null" validate:"required,min=1,max=10"`
}

// TableName returns the table name for SkillScore
func (SkillScore) TableName() string {
	return "skill_scores"
}
