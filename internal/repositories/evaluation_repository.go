package repositories

import (
	"errors"

	"talenthub/interview/internal/models"

	"gorm.io/gorm"
)

var ErrEvaluationNotFound = errors.New("evaluation not found")

type EvaluationRepository struct {
	DB *gorm.DB
}

func (r *EvaluationRepository) Create(evaluation *models.InterviewEvaluation) error {
	return r.DB.Create(evaluation).Error
}

func (r *EvaluationRepository) GetByID(evaluationID uint) (*models.InterviewEvaluation, error) {
	var evaluation models.InterviewEvaluation
	err := r.DB.First(&evaluation, evaluationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEvaluationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func (r *EvaluationRepository) GetByInterview(interviewID uint) (*models.InterviewEvaluation, error) {
	var evaluation models.InterviewEvaluation
	err := r.DB.Where("interview_id = ?", interviewID).First(&evaluation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEvaluationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &evaluation, nil
}

func (r *EvaluationRepository) Save(evaluation *models.InterviewEvaluation) error {
	return r.DB.Save(evaluation).Error
}
