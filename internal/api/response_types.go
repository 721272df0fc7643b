package api

import (
	"time"

	"github.com/terraincognita07/worktime/internal/models"
	"github.com/terraincognita07/worktime/internal/services"
)

type workTimeResponse struct {
	ID           uint       `json:"id"`
	User         *uint      `json:"user"`
	Organization *uint      `json:"organization"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	CreatedAt    time.Time  `json:"created_at"`
	Duration     *string    `json:"duration"`
}

func newWorkTimeResponse(entry models.WorkTime) workTimeResponse {
	response := workTimeResponse{
		ID:           entry.ID,
		User:         entry.UserID,
		Organization: entry.OrganizationID,
		StartTime:    entry.StartTime,
		EndTime:      entry.EndTime,
		CreatedAt:    entry.CreatedAt,
	}
	if duration, closed := entry.Duration(); closed {
		formatted := services.FormatDuration(duration)
		response.Duration = &formatted
	}
	return response
}

func newWorkTimeResponses(entries []models.WorkTime) []workTimeResponse {
	responses := make([]workTimeResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, newWorkTimeResponse(entry))
	}
	return responses
}

type userResponse struct {
	FirstName     string                `json:"first_name"`
	LastName      string                `json:"last_name"`
	Organizations []models.Organization `json:"organizations"`
	Email         string                `json:"email"`
}

func newUserResponses(users []models.User) []userResponse {
	responses := make([]userResponse, 0, len(users))
	for _, user := range users {
		organizations := user.Organizations
		if organizations == nil {
			organizations = []models.Organization{}
		}
		responses = append(responses, userResponse{
			FirstName:     user.FirstName,
			LastName:      user.LastName,
			Organizations: organizations,
			Email:         user.Email,
		})
	}
	return responses
}

type checkInResponse struct {
	Message  string           `json:"message"`
	Action   string           `json:"action"`
	WorkTime workTimeResponse `json:"work_time"`
}

type monthlyTotalResponse struct {
	DurationSum string `json:"duration__sum"`
	OpenRecords int    `json:"open_records"`
}

type credentialsInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}
