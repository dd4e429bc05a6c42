package services

import (
	"fmt"
	"time"

	"talenthub/interview/internal/apperrors"
	"talenthub/interview/internal/models"
	"talenthub/interview/internal/repositories"

	"gorm.io/gorm"
)

// lifecycleEdges is the set of legal status transitions. Every mutating
// operation consults this table; any edge not listed is rejected. The
// explicit status-set endpoint (SetStatus) applies its own narrower rules
// and is the only path that can reach StatusEvaluated.
var lifecycleEdges = map[models.InterviewStatus]map[models.InterviewStatus]bool{
	models.StatusDraft:             {models.StatusAssigned: true},
	models.StatusAssigned:          {models.StatusInProgress: true},
	models.StatusInProgress:        {models.StatusPendingEvaluation: true},
	models.StatusPendingEvaluation: {models.StatusCompleted: true},
}

func canTransition(from, to models.InterviewStatus) bool {
	return lifecycleEdges[from][to]
}

func canManage(interview *models.Interview, callerID uint, role string) bool {
	return role == models.RoleAdmin || interview.InterviewerID == callerID
}

// LifecycleService owns the Interview entity and enforces its status
// transitions. Question and evaluation operations consult it through the
// shared transition table.
type LifecycleService struct {
	DB     *gorm.DB
	Events *EventPublisher
}

// CreateInterviewInput carries the fields an interviewer may set at creation.
type CreateInterviewInput struct {
	Title            string `json:"title"`
	Description      string `json:"description"`
	JobRequirementID uint   `json:"job_requirement_id"`
	QuestionCount    *int   `json:"question_count"`
}

// UpdateInterviewInput supports partial edits. Status and interviewee are
// deliberately absent: those change only through lifecycle transitions.
type UpdateInterviewInput struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	JobRequirementID *uint   `json:"job_requirement_id"`
	QuestionCount    *int    `json:"question_count"`
}

// CreateInterview creates a draft interview owned by the calling interviewer.
func (s *LifecycleService) CreateInterview(interviewerID uint, input CreateInterviewInput) (*models.Interview, error) {
	if input.Title == "" {
		return nil, apperrors.Validation("title is required")
	}
	if input.JobRequirementID == 0 {
		return nil, apperrors.Validation("job_requirement_id is required")
	}

	interview := &models.Interview{
		Title:            input.Title,
		Description:      input.Description,
		JobRequirementID: input.JobRequirementID,
		InterviewerID:    interviewerID,
		Status:           models.StatusDraft,
		QuestionCount:    5,
	}
	if input.QuestionCount != nil {
		interview.QuestionCount = *input.QuestionCount
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		jobs := &repositories.JobRepository{DB: tx}
		if _, err := jobs.GetByID(input.JobRequirementID); err != nil {
			if err == repositories.ErrJobNotFound {
				return apperrors.NotFound("job requirement not found")
			}
			return apperrors.Internal(err)
		}
		if err := (&repositories.InterviewRepository{DB: tx}).Create(interview); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return interview, nil
}

// GetInterview loads an interview and enforces the read-path visibility
// rules: admins see everything, interviewers see their own interviews, and
// the assigned interviewee sees anything past draft.
func (s *LifecycleService) GetInterview(interviewID, callerID uint, role string) (*models.Interview, error) {
	interview, err := loadInterview(s.DB, interviewID)
	if err != nil {
		return nil, err
	}

	switch {
	case role == models.RoleAdmin:
	case interview.InterviewerID == callerID:
	case interview.AssignedTo(callerID):
		// A draft is never visible to the interviewee, even its own.
		if interview.Status == models.StatusDraft {
			return nil, apperrors.Forbidden("interview has not been dispatched yet")
		}
	default:
		return nil, apperrors.Forbidden("no access to this interview")
	}
	return interview, nil
}

// ListByInterviewer returns the interviews the interviewer created.
func (s *LifecycleService) ListByInterviewer(interviewerID uint, status models.InterviewStatus) ([]models.Interview, error) {
	if status != "" && !models.ValidStatus(status) {
		return nil, apperrors.Validation("invalid status filter")
	}
	repo := &repositories.InterviewRepository{DB: s.DB}
	interviews, err := repo.ListByInterviewer(interviewerID, status)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return interviews, nil
}

// ListByInterviewee returns the interviews assigned to the interviewee,
// excluding drafts.
func (s *LifecycleService) ListByInterviewee(intervieweeID uint, status models.InterviewStatus) ([]models.Interview, error) {
	if status != "" && !models.ValidStatus(status) {
		return nil, apperrors.Validation("invalid status filter")
	}
	repo := &repositories.InterviewRepository{DB: s.DB}
	interviews, err := repo.ListByInterviewee(intervieweeID, status)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return interviews, nil
}

// UpdateInterview applies partial field edits by the owning interviewer.
func (s *LifecycleService) UpdateInterview(interviewID, callerID uint, role string, input UpdateInterviewInput) (*models.Interview, error) {
	var interview *models.Interview
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		interview, err = loadInterview(tx, interviewID)
		if err != nil {
			return err
		}
		if !canManage(interview, callerID, role) {
			return apperrors.Forbidden("no permission to modify this interview")
		}

		if input.Title != nil {
			if *input.Title == "" {
				return apperrors.Validation("title cannot be empty")
			}
			interview.Title = *input.Title
		}
		if input.Description != nil {
			interview.Description = *input.Description
		}
		if input.JobRequirementID != nil {
			interview.JobRequirementID = *input.JobRequirementID
		}
		if input.QuestionCount != nil {
			interview.QuestionCount = *input.QuestionCount
		}

		if err := (&repositories.InterviewRepository{DB: tx}).Save(interview); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return interview, nil
}

// DeleteInterview removes the interview together with its questions and
// evaluation in one transaction.
func (s *LifecycleService) DeleteInterview(interviewID, callerID uint, role string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		interview, err := loadInterview(tx, interviewID)
		if err != nil {
			return err
		}
		if !canManage(interview, callerID, role) {
			return apperrors.Forbidden("no permission to delete this interview")
		}
		if err := (&repositories.InterviewRepository{DB: tx}).DeleteCascade(interviewID); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
}

// AssignInterview moves a draft to assigned and records the interviewee.
// The target user must exist and hold the interviewee role.
func (s *LifecycleService) AssignInterview(interviewID, intervieweeID, callerID uint, role string) (*models.Interview, error) {
	var interview *models.Interview
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		interview, err = loadInterview(tx, interviewID)
		if err != nil {
			return err
		}
		if !canManage(interview, callerID, role) {
			return apperrors.Forbidden("no permission to assign this interview")
		}
		if !canTransition(interview.Status, models.StatusAssigned) {
			return apperrors.Conflict(fmt.Sprintf("cannot assign an interview in status %q", interview.Status))
		}

		users := &repositories.UserRepository{DB: tx}
		if _, err := users.GetUserByIDAndRole(intervieweeID, models.RoleInterviewee); err != nil {
			if err == repositories.ErrUserNotFound {
				return apperrors.NotFound("interviewee not found")
			}
			return apperrors.Internal(err)
		}

		interview.IntervieweeID = &intervieweeID
		interview.Status = models.StatusAssigned
		if err := (&repositories.InterviewRepository{DB: tx}).Save(interview); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Events.Publish(EventInterviewAssigned, interview, callerID)
	return interview, nil
}

// StartInterview is invoked by the assigned interviewee and moves the
// interview from assigned to in_progress. started_at is stamped on the
// first start only; a restart after an explicit status reset keeps it.
func (s *LifecycleService) StartInterview(interviewID, callerID uint) (*models.Interview, error) {
	var interview *models.Interview
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		interview, err = loadInterview(tx, interviewID)
		if err != nil {
			return err
		}
		if !interview.AssignedTo(callerID) {
			return apperrors.Forbidden("no permission to start this interview")
		}
		if interview.Status.Terminal() {
			return apperrors.Conflict("interview is already completed")
		}
		if !canTransition(interview.Status, models.StatusInProgress) {
			return apperrors.Conflict(fmt.Sprintf("cannot start an interview in status %q", interview.Status))
		}

		interview.Status = models.StatusInProgress
		if interview.StartedAt == nil {
			now := time.Now().UTC()
			interview.StartedAt = &now
		}
		if err := (&repositories.InterviewRepository{DB: tx}).Save(interview); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Events.Publish(EventInterviewStarted, interview, callerID)
	return interview, nil
}

// CompleteInterview is invoked by the assigned interviewee once every
// question carries a non-blank answer. It moves the interview to
// pending_evaluation and stamps completed_at. If started_at was never
// recorded it falls back to the creation time.
func (s *LifecycleService) CompleteInterview(interviewID, callerID uint) (*models.Interview, error) {
	var interview *models.Interview
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		interview, err = loadInterview(tx, interviewID)
		if err != nil {
			return err
		}
		if !interview.AssignedTo(callerID) {
			return apperrors.Forbidden("no permission to complete this interview")
		}
		if interview.Status.Terminal() {
			return apperrors.Conflict("interview is already completed")
		}
		if !canTransition(interview.Status, models.StatusPendingEvaluation) {
			return apperrors.Conflict(fmt.Sprintf("cannot complete an interview in status %q", interview.Status))
		}

		questions, err := (&repositories.QuestionRepository{DB: tx}).ListByInterview(interviewID)
		if err != nil {
			return apperrors.Internal(err)
		}
		unanswered := 0
		for i := range questions {
			if !questions[i].Answered() {
				unanswered++
			}
		}
		if unanswered > 0 {
			return apperrors.Conflict(fmt.Sprintf("%d questions are still unanswered", unanswered))
		}

		now := time.Now().UTC()
		interview.Status = models.StatusPendingEvaluation
		interview.CompletedAt = &now
		if interview.StartedAt == nil {
			startedAt := interview.CreatedAt
			interview.StartedAt = &startedAt
		}
		if err := (&repositories.InterviewRepository{DB: tx}).Save(interview); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Events.Publish(EventInterviewCompleted, interview, callerID)
	return interview, nil
}

// SetStatus is the explicit status-set endpoint for the owning interviewer.
// It rejects unknown statuses, any change away from a terminal status,
// assigned back to draft, and draft to assigned without an interviewee.
func (s *LifecycleService) SetStatus(interviewID uint, newStatus models.InterviewStatus, callerID uint, role string) (*models.Interview, error) {
	if !models.ValidStatus(newStatus) {
		return nil, apperrors.Validation(fmt.Sprintf("invalid status %q", newStatus))
	}

	var interview *models.Interview
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		interview, err = loadInterview(tx, interviewID)
		if err != nil {
			return err
		}
		if !canManage(interview, callerID, role) {
			return apperrors.Forbidden("no permission to update this interview status")
		}

		current := interview.Status
		if current.Terminal() && newStatus != current {
			return apperrors.Conflict(fmt.Sprintf("a %s interview cannot change status", current))
		}
		if current == models.StatusAssigned && newStatus == models.StatusDraft {
			return apperrors.Conflict("an assigned interview cannot go back to draft")
		}
		if current == models.StatusDraft && newStatus == models.StatusAssigned && interview.IntervieweeID == nil {
			return apperrors.Validation("assign an interviewee before dispatching the interview")
		}

		interview.Status = newStatus
		if err := (&repositories.InterviewRepository{DB: tx}).Save(interview); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Events.Publish(EventInterviewStatusSet, interview, callerID)
	return interview, nil
}
