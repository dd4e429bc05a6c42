package models

import "testing"

func TestValidStatus(t *testing.T) {
	valid := []InterviewStatus{
		StatusDraft, StatusAssigned, StatusInProgress,
		StatusPendingEvaluation, StatusCompleted, StatusEvaluated,
	}
	for _, s := range valid {
		if !ValidStatus(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}

	for _, s := range []InterviewStatus{"", "archived", "Draft", "done"} {
		if ValidStatus(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	if !StatusCompleted.Terminal() {
		t.Error("completed should be terminal")
	}
	if !StatusEvaluated.Terminal() {
		t.Error("evaluated should be terminal")
	}
	for _, s := range []InterviewStatus{StatusDraft, StatusAssigned, StatusInProgress, StatusPendingEvaluation} {
		if s.Terminal() {
			t.Errorf("%q should not be terminal", s)
		}
	}
}

func TestInterviewAssignedTo(t *testing.T) {
	interview := &Interview{}
	if interview.AssignedTo(7) {
		t.Error("unassigned interview should not match any user")
	}

	intervieweeID := uint(7)
	interview.IntervieweeID = &intervieweeID
	if !interview.AssignedTo(7) {
		t.Error("expected interview to be assigned to user 7")
	}
	if interview.AssignedTo(8) {
		t.Error("interview should not be assigned to user 8")
	}
}
