package models

import (
	"time"
)

// InterviewStatus is the lifecycle state of an interview.
type InterviewStatus string

const (
	StatusDraft             InterviewStatus = "draft"
	StatusAssigned          InterviewStatus = "assigned"
	StatusInProgress        InterviewStatus = "in_progress"
	StatusPendingEvaluation InterviewStatus = "pending_evaluation"
	StatusCompleted         InterviewStatus = "completed"
	// StatusEvaluated is reserved; only the explicit status-set endpoint reaches it.
	StatusEvaluated InterviewStatus = "evaluated"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s InterviewStatus) bool {
	switch s {
	case StatusDraft, StatusAssigned, StatusInProgress, StatusPendingEvaluation, StatusCompleted, StatusEvaluated:
		return true
	}
	return false
}

// Terminal reports whether the status can never change again.
func (s InterviewStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusEvaluated
}

// Interview links one interviewer, one job requirement and (once assigned)
// one interviewee. IntervieweeID is nil only while the interview is a draft.
type Interview struct {
	ID               uint            `gorm:"primaryKey" json:"id"`
	Title            string          `gorm:"size:255;not null" json:"title"`
	Description      string          `gorm:"type:text" json:"description"`
	JobRequirementID uint            `gorm:"not null;index" json:"job_requirement_id"`
	InterviewerID    uint            `gorm:"not null;index" json:"interviewer_id"`
	IntervieweeID    *uint           `gorm:"index" json:"interviewee_id"`
	Status           InterviewStatus `gorm:"size:32;not null;default:draft" json:"status"`
	QuestionCount    int             `gorm:"default:5" json:"question_count"`
	StartedAt        *time.Time      `json:"started_at"`
	CompletedAt      *time.Time      `json:"completed_at"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// AssignedTo reports whether the interview is assigned to the given user.
func (i *Interview) AssignedTo(userID uint) bool {
	return i.IntervieweeID != nil && *i.IntervieweeID == userID
}
