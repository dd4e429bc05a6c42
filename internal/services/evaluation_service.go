package services

import (
	"time"

	"talenthub/interview/internal/apperrors"
	"talenthub/interview/internal/models"
	"talenthub/interview/internal/repositories"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EvaluationService manages the single evaluation an interview can have,
// including the finalization lock and its coupling back into the
// interview lifecycle.
type EvaluationService struct {
	DB     *gorm.DB
	Events *EventPublisher
}

// EvaluationInput covers both creation and partial updates. Setting
// CompleteEvaluation finalizes the evaluation and completes the interview
// in the same transaction.
type EvaluationInput struct {
	TotalScore         *int              `json:"total_score"`
	MaxScore           *int              `json:"max_score"`
	OverallComments    *string           `json:"overall_comments"`
	SkillRatings       datatypes.JSONMap `json:"skill_ratings"`
	Recommendations    *string           `json:"recommendations"`
	IsPassed           *bool             `json:"is_passed"`
	DecisionReason     *string           `json:"decision_reason"`
	CompleteEvaluation bool              `json:"complete_evaluation"`
}

// CreateEvaluation creates the evaluation for an interview awaiting one.
// The uniqueness check runs inside the transaction, before the insert.
func (s *EvaluationService) CreateEvaluation(interviewID, evaluatorID uint, role string, input EvaluationInput) (*models.InterviewEvaluation, error) {
	if input.MaxScore != nil && *input.MaxScore < 0 {
		return nil, apperrors.Validation("max_score cannot be negative")
	}
	if input.TotalScore != nil && *input.TotalScore < 0 {
		return nil, apperrors.Validation("total_score cannot be negative")
	}

	var evaluation *models.InterviewEvaluation
	var interview *models.Interview
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		interview, err = loadInterview(tx, interviewID)
		if err != nil {
			return err
		}
		if !canManage(interview, evaluatorID, role) {
			return apperrors.Forbidden("no permission to evaluate this interview")
		}
		if interview.Status != models.StatusPendingEvaluation {
			return apperrors.Conflict("interview is not awaiting evaluation")
		}

		evaluations := &repositories.EvaluationRepository{DB: tx}
		if _, err := evaluations.GetByInterview(interviewID); err == nil {
			return apperrors.Conflict("interview already has an evaluation")
		} else if err != repositories.ErrEvaluationNotFound {
			return apperrors.Internal(err)
		}

		evaluation = &models.InterviewEvaluation{
			InterviewID: interviewID,
			EvaluatorID: evaluatorID,
			MaxScore:    100,
			EvaluatedAt: time.Now().UTC(),
		}
		applyEvaluationInput(evaluation, input)

		if input.CompleteEvaluation {
			if !canTransition(interview.Status, models.StatusCompleted) {
				return apperrors.Conflict("interview cannot be completed from its current status")
			}
			evaluation.IsFinalized = true
			interview.Status = models.StatusCompleted
			if err := (&repositories.InterviewRepository{DB: tx}).Save(interview); err != nil {
				return apperrors.Internal(err)
			}
		}

		if err := evaluations.Create(evaluation); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if evaluation.IsFinalized {
		s.Events.Publish(EventInterviewEvaluated, interview, evaluatorID)
	}
	return evaluation, nil
}

// GetEvaluation returns the evaluation visible to interview participants.
func (s *EvaluationService) GetEvaluation(interviewID, callerID uint, role string) (*models.InterviewEvaluation, error) {
	interview, err := loadInterview(s.DB, interviewID)
	if err != nil {
		return nil, err
	}
	if role != models.RoleAdmin && interview.InterviewerID != callerID && !interview.AssignedTo(callerID) {
		return nil, apperrors.Forbidden("no access to this interview's evaluation")
	}

	evaluation, err := (&repositories.EvaluationRepository{DB: s.DB}).GetByInterview(interviewID)
	if err != nil {
		if err == repositories.ErrEvaluationNotFound {
			return nil, apperrors.NotFound("evaluation not found")
		}
		return nil, apperrors.Internal(err)
	}
	return evaluation, nil
}

// UpdateEvaluation applies partial edits to an unfinalized evaluation.
// A finalized evaluation is immutable regardless of caller role.
func (s *EvaluationService) UpdateEvaluation(evaluationID, callerID uint, role string, input EvaluationInput) (*models.InterviewEvaluation, error) {
	if input.MaxScore != nil && *input.MaxScore < 0 {
		return nil, apperrors.Validation("max_score cannot be negative")
	}
	if input.TotalScore != nil && *input.TotalScore < 0 {
		return nil, apperrors.Validation("total_score cannot be negative")
	}

	var evaluation *models.InterviewEvaluation
	var interview *models.Interview
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		evaluations := &repositories.EvaluationRepository{DB: tx}
		var err error
		evaluation, err = evaluations.GetByID(evaluationID)
		if err != nil {
			if err == repositories.ErrEvaluationNotFound {
				return apperrors.NotFound("evaluation not found")
			}
			return apperrors.Internal(err)
		}
		if evaluation.IsFinalized {
			return apperrors.Conflict("evaluation is finalized and cannot be modified")
		}

		interview, err = loadInterview(tx, evaluation.InterviewID)
		if err != nil {
			return err
		}
		if !canManage(interview, callerID, role) {
			return apperrors.Forbidden("no permission to modify this evaluation")
		}

		applyEvaluationInput(evaluation, input)

		if input.CompleteEvaluation {
			// Finalizing also completes the interview, through the same
			// transition table CreateEvaluation uses. An interview already
			// at a terminal status is left alone.
			if !interview.Status.Terminal() {
				if !canTransition(interview.Status, models.StatusCompleted) {
					return apperrors.Conflict("interview cannot be completed from its current status")
				}
				interview.Status = models.StatusCompleted
				if err := (&repositories.InterviewRepository{DB: tx}).Save(interview); err != nil {
					return apperrors.Internal(err)
				}
			}
			evaluation.IsFinalized = true
		}

		if err := evaluations.Save(evaluation); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if input.CompleteEvaluation {
		s.Events.Publish(EventInterviewEvaluated, interview, callerID)
	}
	return evaluation, nil
}

func applyEvaluationInput(evaluation *models.InterviewEvaluation, input EvaluationInput) {
	if input.TotalScore != nil {
		evaluation.TotalScore = *input.TotalScore
	}
	if input.MaxScore != nil {
		evaluation.MaxScore = *input.MaxScore
	}
	if input.OverallComments != nil {
		evaluation.OverallComments = *input.OverallComments
	}
	if input.SkillRatings != nil {
		evaluation.SkillRatings = input.SkillRatings
	}
	if input.Recommendations != nil {
		evaluation.Recommendations = *input.Recommendations
	}
	if input.IsPassed != nil {
		evaluation.IsPassed = *input.IsPassed
	}
	if input.DecisionReason != nil {
		evaluation.DecisionReason = *input.DecisionReason
	}
}
