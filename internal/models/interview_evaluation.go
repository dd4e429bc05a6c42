package models

import (
	"math"
	"time"

	"gorm.io/datatypes"
)

// InterviewEvaluation is the single evaluation of an interview. Once
// IsFinalized flips to true the record is locked and never written again.
type InterviewEvaluation struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	InterviewID     uint              `gorm:"not null;uniqueIndex" json:"interview_id"`
	EvaluatorID     uint              `gorm:"not null" json:"evaluator_id"`
	TotalScore      int               `gorm:"not null;default:0" json:"total_score"`
	MaxScore        int               `gorm:"not null;default:100" json:"max_score"`
	OverallComments string            `gorm:"type:text" json:"overall_comments"`
	SkillRatings    datatypes.JSONMap `json:"skill_ratings"`
	Recommendations string            `gorm:"type:text" json:"recommendations"`
	IsPassed        bool              `gorm:"not null;default:false" json:"is_passed"`
	IsFinalized     bool              `gorm:"not null;default:false" json:"is_finalized"`
	DecisionReason  string            `gorm:"type:text" json:"decision_reason"`
	EvaluatedAt     time.Time         `json:"evaluated_at"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// CalculatePercentage returns the score as a percentage rounded to two
// decimals. A non-positive max score yields 0 instead of dividing by zero.
func (e *InterviewEvaluation) CalculatePercentage() float64 {
	if e.MaxScore <= 0 {
		return 0
	}
	pct := float64(e.TotalScore) / float64(e.MaxScore) * 100
	return math.Round(pct*100) / 100
}
