package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
)

// Question types supported by the interview editor.
const (
	QuestionTypeSingleChoice   = "single_choice"
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeText           = "text"
	QuestionTypeCode           = "code"
)

// ValidQuestionType reports whether t is a known question type.
func ValidQuestionType(t string) bool {
	switch t {
	case QuestionTypeSingleChoice, QuestionTypeMultipleChoice, QuestionTypeText, QuestionTypeCode:
		return true
	}
	return false
}

// InterviewQuestion is one question inside an interview. OrderIndex is
// assigned monotonically per interview and never renumbered on deletion.
type InterviewQuestion struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	InterviewID     uint           `gorm:"not null;index" json:"interview_id"`
	QuestionText    string         `gorm:"type:text;not null" json:"question_text"`
	QuestionType    string         `gorm:"size:32;not null;default:text" json:"question_type"`
	Options         datatypes.JSON `json:"options"`
	ReferenceAnswer string         `gorm:"type:text" json:"reference_answer"`
	Score           int            `gorm:"default:10" json:"score"`
	OrderIndex      int            `gorm:"default:0" json:"order_index"`
	CandidateAnswer *string        `gorm:"type:text" json:"candidate_answer"`
	ActualScore     *int           `json:"actual_score"`
	Comments        *string        `gorm:"type:text" json:"comments"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// CandidateView is the question projection shown to the assigned interviewee.
// It omits the reference answer and anything the interviewer scored.
type CandidateView struct {
	ID              uint           `json:"id"`
	InterviewID     uint           `json:"interview_id"`
	QuestionText    string         `json:"question_text"`
	QuestionType    string         `json:"question_type"`
	Options         datatypes.JSON `json:"options"`
	Score           int            `json:"score"`
	OrderIndex      int            `json:"order_index"`
	CandidateAnswer *string        `json:"candidate_answer"`
}

// ForCandidate redacts the question for the interviewee viewpoint.
func (q *InterviewQuestion) ForCandidate() CandidateView {
	return CandidateView{
		ID:              q.ID,
		InterviewID:     q.InterviewID,
		QuestionText:    q.QuestionText,
		QuestionType:    q.QuestionType,
		Options:         q.Options,
		Score:           q.Score,
		OrderIndex:      q.OrderIndex,
		CandidateAnswer: q.CandidateAnswer,
	}
}

// Answered reports whether the candidate answer counts for completion.
// Whitespace-only answers do not.
func (q *InterviewQuestion) Answered() bool {
	return q.CandidateAnswer != nil && strings.TrimSpace(*q.CandidateAnswer) != ""
}
