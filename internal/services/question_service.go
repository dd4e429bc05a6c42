package services

import (
	"fmt"

	"talenthub/interview/internal/apperrors"
	"talenthub/interview/internal/models"
	"talenthub/interview/internal/repositories"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuestionService manages the ordered question set of an interview and the
// candidate's answers. Mutations that depend on the interview's lifecycle
// state check it inside the same transaction.
type QuestionService struct {
	DB *gorm.DB
}

// QuestionInput carries the fields set when adding a question.
type QuestionInput struct {
	QuestionText    string         `json:"question_text"`
	QuestionType    string         `json:"question_type"`
	Options         datatypes.JSON `json:"options"`
	ReferenceAnswer string         `json:"reference_answer"`
	Score           *int           `json:"score"`
}

// UpdateQuestionInput supports partial edits, including explicit reordering.
type UpdateQuestionInput struct {
	QuestionText    *string        `json:"question_text"`
	QuestionType    *string        `json:"question_type"`
	Options         datatypes.JSON `json:"options"`
	ReferenceAnswer *string        `json:"reference_answer"`
	Score           *int           `json:"score"`
	OrderIndex      *int           `json:"order_index"`
}

// AddQuestion appends a question to the interview. The order index is
// one past the highest index ever used, so deletions leave gaps and an
// index is never handed out twice for a growing set.
func (s *QuestionService) AddQuestion(interviewID, callerID uint, role string, input QuestionInput) (*models.InterviewQuestion, error) {
	if input.QuestionText == "" {
		return nil, apperrors.Validation("question_text is required")
	}
	questionType := input.QuestionType
	if questionType == "" {
		questionType = models.QuestionTypeText
	}
	if !models.ValidQuestionType(questionType) {
		return nil, apperrors.Validation(fmt.Sprintf("invalid question type %q", questionType))
	}

	var question *models.InterviewQuestion
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		interview, err := loadInterview(tx, interviewID)
		if err != nil {
			return err
		}
		if !canManage(interview, callerID, role) {
			return apperrors.Forbidden("no permission to add questions to this interview")
		}

		questions := &repositories.QuestionRepository{DB: tx}
		orderIndex, err := questions.NextOrderIndex(interviewID)
		if err != nil {
			return apperrors.Internal(err)
		}

		question = &models.InterviewQuestion{
			InterviewID:     interviewID,
			QuestionText:    input.QuestionText,
			QuestionType:    questionType,
			Options:         input.Options,
			ReferenceAnswer: input.ReferenceAnswer,
			Score:           10,
			OrderIndex:      orderIndex,
		}
		if input.Score != nil {
			question.Score = *input.Score
		}
		if err := questions.Create(question); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return question, nil
}

// ListQuestions returns the full question records for the interviewer or
// admin viewpoint.
func (s *QuestionService) ListQuestions(interviewID, callerID uint, role string) ([]models.InterviewQuestion, error) {
	if err := s.checkQuestionAccess(interviewID, callerID, role); err != nil {
		return nil, err
	}
	questions, err := (&repositories.QuestionRepository{DB: s.DB}).ListByInterview(interviewID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return questions, nil
}

// ListQuestionsForCandidate returns the redacted projection shown to the
// interviewee: no reference answers, no scores, no interviewer comments.
func (s *QuestionService) ListQuestionsForCandidate(interviewID, callerID uint, role string) ([]models.CandidateView, error) {
	if err := s.checkQuestionAccess(interviewID, callerID, role); err != nil {
		return nil, err
	}
	questions, err := (&repositories.QuestionRepository{DB: s.DB}).ListByInterview(interviewID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	views := make([]models.CandidateView, 0, len(questions))
	for i := range questions {
		views = append(views, questions[i].ForCandidate())
	}
	return views, nil
}

// SubmitAnswer records the candidate's answer verbatim. It is only allowed
// while the owning interview is assigned or in progress, and only by the
// assigned interviewee (or an admin).
func (s *QuestionService) SubmitAnswer(questionID, callerID uint, role string, answer string) (*models.InterviewQuestion, error) {
	var question *models.InterviewQuestion
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		question, err = loadQuestion(tx, questionID)
		if err != nil {
			return err
		}
		interview, err := loadInterview(tx, question.InterviewID)
		if err != nil {
			return err
		}
		if role != models.RoleAdmin && !interview.AssignedTo(callerID) {
			return apperrors.Forbidden("no permission to answer this question")
		}
		if interview.Status != models.StatusAssigned && interview.Status != models.StatusInProgress {
			return apperrors.Conflict(fmt.Sprintf("answers cannot be submitted while the interview is %s", interview.Status))
		}

		question.CandidateAnswer = &answer
		if err := (&repositories.QuestionRepository{DB: tx}).Save(question); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return question, nil
}

// ScoreQuestion records the interviewer's score and comments. The score is
// not checked against the question's point value; sane values are the
// caller's responsibility.
func (s *QuestionService) ScoreQuestion(questionID, callerID uint, role string, score int, comments string) (*models.InterviewQuestion, error) {
	var question *models.InterviewQuestion
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		question, err = loadQuestion(tx, questionID)
		if err != nil {
			return err
		}
		interview, err := loadInterview(tx, question.InterviewID)
		if err != nil {
			return err
		}
		if !canManage(interview, callerID, role) {
			return apperrors.Forbidden("no permission to score this question")
		}

		question.ActualScore = &score
		question.Comments = &comments
		if err := (&repositories.QuestionRepository{DB: tx}).Save(question); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return question, nil
}

// UpdateQuestion applies partial edits. Edits are not gated by the
// interview status, so a question can change after answers exist.
func (s *QuestionService) UpdateQuestion(questionID, callerID uint, role string, input UpdateQuestionInput) (*models.InterviewQuestion, error) {
	var question *models.InterviewQuestion
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		question, err = loadQuestion(tx, questionID)
		if err != nil {
			return err
		}
		interview, err := loadInterview(tx, question.InterviewID)
		if err != nil {
			return err
		}
		if !canManage(interview, callerID, role) {
			return apperrors.Forbidden("no permission to modify this question")
		}

		if input.QuestionText != nil {
			if *input.QuestionText == "" {
				return apperrors.Validation("question_text cannot be empty")
			}
			question.QuestionText = *input.QuestionText
		}
		if input.QuestionType != nil {
			if !models.ValidQuestionType(*input.QuestionType) {
				return apperrors.Validation(fmt.Sprintf("invalid question type %q", *input.QuestionType))
			}
			question.QuestionType = *input.QuestionType
		}
		if input.Options != nil {
			question.Options = input.Options
		}
		if input.ReferenceAnswer != nil {
			question.ReferenceAnswer = *input.ReferenceAnswer
		}
		if input.Score != nil {
			question.Score = *input.Score
		}
		if input.OrderIndex != nil {
			question.OrderIndex = *input.OrderIndex
		}

		if err := (&repositories.QuestionRepository{DB: tx}).Save(question); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return question, nil
}

// DeleteQuestion removes a question. The freed order index is not reused.
func (s *QuestionService) DeleteQuestion(questionID, callerID uint, role string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		question, err := loadQuestion(tx, questionID)
		if err != nil {
			return err
		}
		interview, err := loadInterview(tx, question.InterviewID)
		if err != nil {
			return err
		}
		if !canManage(interview, callerID, role) {
			return apperrors.Forbidden("no permission to delete this question")
		}
		if err := (&repositories.QuestionRepository{DB: tx}).Delete(questionID); err != nil {
			return apperrors.Internal(err)
		}
		return nil
	})
}

func (s *QuestionService) checkQuestionAccess(interviewID, callerID uint, role string) error {
	interview, err := loadInterview(s.DB, interviewID)
	if err != nil {
		return err
	}
	if role == models.RoleAdmin || interview.InterviewerID == callerID || interview.AssignedTo(callerID) {
		return nil
	}
	return apperrors.Forbidden("no access to this interview's questions")
}

func loadQuestion(tx *gorm.DB, questionID uint) (*models.InterviewQuestion, error) {
	question, err := (&repositories.QuestionRepository{DB: tx}).GetByID(questionID)
	if err != nil {
		if err == repositories.ErrQuestionNotFound {
			return nil, apperrors.NotFound("question not found")
		}
		return nil, apperrors.Internal(err)
	}
	return question, nil
}

func loadInterview(tx *gorm.DB, interviewID uint) (*models.Interview, error) {
	interview, err := (&repositories.InterviewRepository{DB: tx}).GetByID(interviewID)
	if err != nil {
		if err == repositories.ErrInterviewNotFound {
			return nil, apperrors.NotFound("interview not found")
		}
		return nil, apperrors.Internal(err)
	}
	return interview, nil
}
