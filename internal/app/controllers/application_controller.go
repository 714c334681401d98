package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kartavya/website/internal/app/models/dto"
	"github.com/kartavya/website/internal/app/services"
	"github.com/kartavya/website/internal/middleware"
)

// IdempotencyKeyHeader carries the client token on JSON submissions.
const IdempotencyKeyHeader = "Idempotency-Key"

// ApplicationController accepts NGO applications over JSON
type ApplicationController struct {
	applicationService services.ApplicationService
}

// NewApplicationController creates a new ApplicationController
func NewApplicationController(applicationService services.ApplicationService) *ApplicationController {
	return &ApplicationController{
		applicationService: applicationService,
	}
}

// SubmitApplication stores one application
// @Summary Submit an application
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Client token (UUID)"
// @Param request body dto.CreateApplicationRequest true "Application"
// @Success 201 {object} dto.APIResponse{data=dto.ApplicationSubmittedResponse}
// @Failure 400 {object} dto.APIResponse "Invalid application"
// @Failure 429 {object} dto.APIResponse "Too many submissions"
// @Failure 500 {object} dto.APIResponse "Failed to submit application"
// @Router /applications [post]
func (c *ApplicationController) SubmitApplication(ctx *gin.Context) {
	var req dto.CreateApplicationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(ctx, middleware.BindingError(err))
		return
	}

	token := req.ClientToken
	if key := ctx.GetHeader(IdempotencyKeyHeader); key != "" {
		token = key
	}

	result, err := c.applicationService.SubmitApplication(ctx, req.Application, token)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ApplicationSubmittedResponse{
		Message:     "Application submitted",
		ClientToken: token,
		Duplicate:   result.Duplicate,
	}))
}
