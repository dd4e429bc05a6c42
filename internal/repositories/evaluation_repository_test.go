package repositories

import (
	"testing"

	"talenthub/interview/internal/models"
	"talenthub/interview/internal/testhelpers"
)

func TestEvaluationRepositoryGetByInterview(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &EvaluationRepository{DB: db}

	if _, err := repo.GetByInterview(1); err != ErrEvaluationNotFound {
		t.Fatalf("expected ErrEvaluationNotFound, got %v", err)
	}

	evaluation := &models.InterviewEvaluation{InterviewID: 1, EvaluatorID: 2, TotalScore: 70, MaxScore: 100}
	if err := repo.Create(evaluation); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	found, err := repo.GetByInterview(1)
	if err != nil {
		t.Fatalf("GetByInterview failed: %v", err)
	}
	if found.TotalScore != 70 {
		t.Fatalf("expected total score 70, got %d", found.TotalScore)
	}

	found.TotalScore = 85
	if err := repo.Save(found); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	again, err := repo.GetByID(found.ID)
	if err != nil || again.TotalScore != 85 {
		t.Fatalf("GetByID after save = %v, %v", again, err)
	}
}
