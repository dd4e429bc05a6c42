package handlers

import (
	"encoding/json"
	"net/http"

	"talenthub/interview/internal/models"
	"talenthub/interview/internal/repositories"
	"talenthub/interview/internal/utils"

	"gorm.io/datatypes"
)

// JobHandler manages the job requirements interviews are created for.
type JobHandler struct {
	Repo *repositories.JobRepository
}

type jobRequest struct {
	JobTitle    *string        `json:"job_title"`
	Description *string        `json:"description"`
	Skills      datatypes.JSON `json:"skills"`
}

// CreateJobHandler creates a job requirement.
func (h *JobHandler) CreateJobHandler(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.JobTitle == nil || *req.JobTitle == "" {
		utils.JSONError(w, http.StatusBadRequest, "job_title is required")
		return
	}

	job := &models.JobRequirement{JobTitle: *req.JobTitle, Skills: req.Skills}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if err := h.Repo.Create(job); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to create job requirement")
		return
	}
	utils.JSON(w, http.StatusCreated, map[string]any{"data": job})
}

// ListJobsHandler returns all job requirements, newest first.
func (h *JobHandler) ListJobsHandler(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.Repo.List()
	if err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to list job requirements")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"data": jobs})
}

// GetJobHandler returns one job requirement.
func (h *JobHandler) GetJobHandler(w http.ResponseWriter, r *http.Request) {
	jobID, err := uintParam(r, "id")
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	job, err := h.Repo.GetByID(jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			utils.JSONError(w, http.StatusNotFound, "job requirement not found")
		} else {
			utils.JSONError(w, http.StatusInternalServerError, "failed to retrieve job requirement")
		}
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"data": job})
}

// UpdateJobHandler applies partial edits to a job requirement.
func (h *JobHandler) UpdateJobHandler(w http.ResponseWriter, r *http.Request) {
	jobID, err := uintParam(r, "id")
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	var req jobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	job, err := h.Repo.GetByID(jobID)
	if err != nil {
		if err == repositories.ErrJobNotFound {
			utils.JSONError(w, http.StatusNotFound, "job requirement not found")
		} else {
			utils.JSONError(w, http.StatusInternalServerError, "failed to retrieve job requirement")
		}
		return
	}

	if req.JobTitle != nil {
		job.JobTitle = *req.JobTitle
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Skills != nil {
		job.Skills = req.Skills
	}
	if err := h.Repo.Save(job); err != nil {
		utils.JSONError(w, http.StatusInternalServerError, "failed to update job requirement")
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"data": job})
}

// DeleteJobHandler removes a job requirement. Interviews keep their
// reference; there is no cascade from jobs.
func (h *JobHandler) DeleteJobHandler(w http.ResponseWriter, r *http.Request) {
	jobID, err := uintParam(r, "id")
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid job id")
		return
	}

	if err := h.Repo.Delete(jobID); err != nil {
		if err == repositories.ErrJobNotFound {
			utils.JSONError(w, http.StatusNotFound, "job requirement not found")
		} else {
			utils.JSONError(w, http.StatusInternalServerError, "failed to delete job requirement")
		}
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"message": "job requirement deleted"})
}
