package dto

import "github.com/kartavya/website/internal/app/models"

// CreateApplicationRequest is the JSON body of POST /api/v1/applications
type CreateApplicationRequest struct {
	models.Application
	// ClientToken deduplicates replayed submissions. The Idempotency-Key header takes precedence.
	ClientToken string `json:"client_token" form:"client_token" binding:"omitempty,uuid"`
}

// ApplicationSubmittedResponse is returned after a successful submission
type ApplicationSubmittedResponse struct {
	Message     string `json:"message"`
	ClientToken string `json:"client_token,omitempty"`
	Duplicate   bool   `json:"duplicate"`
}
