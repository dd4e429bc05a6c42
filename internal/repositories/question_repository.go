package repositories

import (
	"errors"

	"talenthub/interview/internal/models"

	"gorm.io/gorm"
)

var ErrQuestionNotFound = errors.New("question not found")

type QuestionRepository struct {
	DB *gorm.DB
}

func (r *QuestionRepository) Create(question *models.InterviewQuestion) error {
	return r.DB.Create(question).Error
}

func (r *QuestionRepository) GetByID(questionID uint) (*models.InterviewQuestion, error) {
	var question models.InterviewQuestion
	err := r.DB.First(&question, questionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuestionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// ListByInterview returns the interview's questions in display order.
func (r *QuestionRepository) ListByInterview(interviewID uint) ([]models.InterviewQuestion, error) {
	questions := []models.InterviewQuestion{}
	err := r.DB.Where("interview_id = ?", interviewID).
		Order("order_index ASC").
		Find(&questions).Error
	return questions, err
}

// NextOrderIndex returns 1 + the highest order index used so far for the
// interview. Deleted questions leave gaps; indices are never renumbered.
func (r *QuestionRepository) NextOrderIndex(interviewID uint) (int, error) {
	var maxIndex int
	err := r.DB.Model(&models.InterviewQuestion{}).
		Where("interview_id = ?", interviewID).
		Select("COALESCE(MAX(order_index), 0)").
		Scan(&maxIndex).Error
	if err != nil {
		return 0, err
	}
	return maxIndex + 1, nil
}

func (r *QuestionRepository) Save(question *models.InterviewQuestion) error {
	return r.DB.Save(question).Error
}

func (r *QuestionRepository) Delete(questionID uint) error {
	result := r.DB.Delete(&models.InterviewQuestion{}, questionID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrQuestionNotFound
	}
	return nil
}
