package repositories

import (
	"errors"

	"talenthub/interview/internal/models"

	"gorm.io/gorm"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewRepository struct {
	DB *gorm.DB
}

func (r *InterviewRepository) Create(interview *models.Interview) error {
	return r.DB.Create(interview).Error
}

func (r *InterviewRepository) GetByID(interviewID uint) (*models.Interview, error) {
	var interview models.Interview
	err := r.DB.First(&interview, interviewID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInterviewNotFound
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

// ListByInterviewer returns interviews created by the interviewer, newest
// first, optionally filtered by status.
func (r *InterviewRepository) ListByInterviewer(interviewerID uint, status models.InterviewStatus) ([]models.Interview, error) {
	interviews := []models.Interview{}
	query := r.DB.Where("interviewer_id = ?", interviewerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&interviews).Error
	return interviews, err
}

// ListByInterviewee returns interviews assigned to the interviewee. Drafts
// are never visible to the interviewee.
func (r *InterviewRepository) ListByInterviewee(intervieweeID uint, status models.InterviewStatus) ([]models.Interview, error) {
	interviews := []models.Interview{}
	query := r.DB.Where("interviewee_id = ?", intervieweeID).
		Where("status <> ?", models.StatusDraft)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&interviews).Error
	return interviews, err
}

func (r *InterviewRepository) Save(interview *models.Interview) error {
	return r.DB.Save(interview).Error
}

// DeleteCascade removes the interview together with its questions and
// evaluation. Callers must run it inside a transaction so a failure in any
// of the three deletes rolls back the whole operation.
func (r *InterviewRepository) DeleteCascade(interviewID uint) error {
	if err := r.DB.Where("interview_id = ?", interviewID).Delete(&models.InterviewQuestion{}).Error; err != nil {
		return err
	}
	if err := r.DB.Where("interview_id = ?", interviewID).Delete(&models.InterviewEvaluation{}).Error; err != nil {
		return err
	}
	result := r.DB.Delete(&models.Interview{}, interviewID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}
