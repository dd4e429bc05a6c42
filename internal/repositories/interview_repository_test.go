package repositories

import (
	"testing"

	"talenthub/interview/internal/models"
	"talenthub/interview/internal/testhelpers"

	"gorm.io/gorm"
)

func seedInterview(t *testing.T, db *gorm.DB, interview *models.Interview) *models.Interview {
	t.Helper()
	if interview.Title == "" {
		interview.Title = "Backend screen"
	}
	if interview.JobRequirementID == 0 {
		interview.JobRequirementID = 1
	}
	if interview.InterviewerID == 0 {
		interview.InterviewerID = 1
	}
	if interview.Status == "" {
		interview.Status = models.StatusDraft
	}
	if err := db.Create(interview).Error; err != nil {
		t.Fatalf("failed to seed interview: %v", err)
	}
	return interview
}

func TestInterviewRepositoryGetByID(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &InterviewRepository{DB: db}

	seeded := seedInterview(t, db, &models.Interview{})

	found, err := repo.GetByID(seeded.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Title != seeded.Title {
		t.Fatalf("expected title %q, got %q", seeded.Title, found.Title)
	}

	if _, err := repo.GetByID(9999); err != ErrInterviewNotFound {
		t.Fatalf("expected ErrInterviewNotFound, got %v", err)
	}
}

func TestInterviewRepositoryListByInterviewer(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &InterviewRepository{DB: db}

	seedInterview(t, db, &models.Interview{InterviewerID: 1, Status: models.StatusDraft})
	seedInterview(t, db, &models.Interview{InterviewerID: 1, Status: models.StatusAssigned})
	seedInterview(t, db, &models.Interview{InterviewerID: 2, Status: models.StatusDraft})

	all, err := repo.ListByInterviewer(1, "")
	if err != nil {
		t.Fatalf("ListByInterviewer failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 interviews, got %d", len(all))
	}

	drafts, err := repo.ListByInterviewer(1, models.StatusDraft)
	if err != nil {
		t.Fatalf("ListByInterviewer with filter failed: %v", err)
	}
	if len(drafts) != 1 || drafts[0].Status != models.StatusDraft {
		t.Fatalf("expected 1 draft, got %v", drafts)
	}
}

func TestInterviewRepositoryListByIntervieweeExcludesDrafts(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &InterviewRepository{DB: db}

	intervieweeID := uint(5)
	seedInterview(t, db, &models.Interview{IntervieweeID: &intervieweeID, Status: models.StatusDraft})
	seedInterview(t, db, &models.Interview{IntervieweeID: &intervieweeID, Status: models.StatusAssigned})
	seedInterview(t, db, &models.Interview{IntervieweeID: &intervieweeID, Status: models.StatusCompleted})

	visible, err := repo.ListByInterviewee(intervieweeID, "")
	if err != nil {
		t.Fatalf("ListByInterviewee failed: %v", err)
	}
	if len(visible) != 2 {
		t.Fatalf("expected 2 visible interviews, got %d", len(visible))
	}
	for _, interview := range visible {
		if interview.Status == models.StatusDraft {
			t.Fatal("drafts must never be listed for the interviewee")
		}
	}

	completed, err := repo.ListByInterviewee(intervieweeID, models.StatusCompleted)
	if err != nil {
		t.Fatalf("ListByInterviewee with filter failed: %v", err)
	}
	if len(completed) != 1 {
		t.Fatalf("expected 1 completed interview, got %d", len(completed))
	}
}

func TestInterviewRepositoryDeleteCascade(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &InterviewRepository{DB: db}

	interview := seedInterview(t, db, &models.Interview{Status: models.StatusPendingEvaluation})
	keep := seedInterview(t, db, &models.Interview{})

	for i := 1; i <= 2; i++ {
		question := &models.InterviewQuestion{InterviewID: interview.ID, QuestionText: "q", OrderIndex: i}
		if err := db.Create(question).Error; err != nil {
			t.Fatalf("failed to seed question: %v", err)
		}
	}
	keepQuestion := &models.InterviewQuestion{InterviewID: keep.ID, QuestionText: "q", OrderIndex: 1}
	if err := db.Create(keepQuestion).Error; err != nil {
		t.Fatalf("failed to seed question: %v", err)
	}
	evaluation := &models.InterviewEvaluation{InterviewID: interview.ID, EvaluatorID: 1, MaxScore: 100}
	if err := db.Create(evaluation).Error; err != nil {
		t.Fatalf("failed to seed evaluation: %v", err)
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return (&InterviewRepository{DB: tx}).DeleteCascade(interview.ID)
	}); err != nil {
		t.Fatalf("DeleteCascade failed: %v", err)
	}

	var questionCount, evaluationCount int64
	db.Model(&models.InterviewQuestion{}).Where("interview_id = ?", interview.ID).Count(&questionCount)
	db.Model(&models.InterviewEvaluation{}).Where("interview_id = ?", interview.ID).Count(&evaluationCount)
	if questionCount != 0 || evaluationCount != 0 {
		t.Fatalf("expected children removed, got %d questions and %d evaluations", questionCount, evaluationCount)
	}
	if _, err := repo.GetByID(interview.ID); err != ErrInterviewNotFound {
		t.Fatalf("expected interview gone, got %v", err)
	}

	// Unrelated interviews keep their questions.
	var keepCount int64
	db.Model(&models.InterviewQuestion{}).Where("interview_id = ?", keep.ID).Count(&keepCount)
	if keepCount != 1 {
		t.Fatalf("expected unrelated question to survive, got %d", keepCount)
	}

	if err := repo.DeleteCascade(9999); err != ErrInterviewNotFound {
		t.Fatalf("expected ErrInterviewNotFound for missing interview, got %v", err)
	}
}

func TestInterviewRepositoryDeleteCascadeRollsBack(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	repo := &InterviewRepository{DB: db}

	interview := seedInterview(t, db, &models.Interview{Status: models.StatusPendingEvaluation})
	for i := 1; i <= 2; i++ {
		question := &models.InterviewQuestion{InterviewID: interview.ID, QuestionText: "q", OrderIndex: i}
		if err := db.Create(question).Error; err != nil {
			t.Fatalf("failed to seed question: %v", err)
		}
	}

	// Make the middle delete fail so the transaction has to unwind the
	// question delete that already ran.
	testhelpers.DropEvaluationTable(t, db)

	err := db.Transaction(func(tx *gorm.DB) error {
		return (&InterviewRepository{DB: tx}).DeleteCascade(interview.ID)
	})
	if err == nil {
		t.Fatal("expected DeleteCascade to fail")
	}

	var questionCount int64
	db.Model(&models.InterviewQuestion{}).Where("interview_id = ?", interview.ID).Count(&questionCount)
	if questionCount != 2 {
		t.Fatalf("expected both questions to survive the rollback, got %d", questionCount)
	}
	if _, err := repo.GetByID(interview.ID); err != nil {
		t.Fatalf("expected the interview to survive the rollback: %v", err)
	}
}
