package repositories

import (
	"errors"

	"talenthub/interview/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job requirement not found")

type JobRepository struct {
	DB *gorm.DB
}

func (r *JobRepository) Create(job *models.JobRequirement) error {
	return r.DB.Create(job).Error
}

func (r *JobRepository) GetByID(jobID uint) (*models.JobRequirement, error) {
	var job models.JobRequirement
	err := r.DB.First(&job, jobID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *JobRepository) List() ([]models.JobRequirement, error) {
	jobs := []models.JobRequirement{}
	err := r.DB.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepository) Save(job *models.JobRequirement) error {
	return r.DB.Save(job).Error
}

func (r *JobRepository) Delete(jobID uint) error {
	result := r.DB.Delete(&models.JobRequirement{}, jobID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}
