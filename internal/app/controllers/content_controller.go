package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kartavya/website/internal/app/models/dto"
	"github.com/kartavya/website/internal/app/services"
	"github.com/kartavya/website/internal/app/views"
)

// ContentController serves the site collections as JSON. Reads never fail:
// a store error yields an empty list.
type ContentController struct {
	sectionService services.SectionService
}

// NewContentController creates a new ContentController
func NewContentController(sectionService services.SectionService) *ContentController {
	return &ContentController{
		sectionService: sectionService,
	}
}

// GetOrganizations lists the active incubated NGOs
// @Router /ngos [get]
func (c *ContentController) GetOrganizations(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.sectionService.LoadOrganizations(ctx).Items))
}

// GetOrganizationMembers lists the members of one NGO
// @Router /ngos/{id}/members [get]
func (c *ContentController) GetOrganizationMembers(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.sectionService.LoadMembers(ctx, ctx.Param("id"))))
}

// GetTeam lists the team in display order
// @Router /team [get]
func (c *ContentController) GetTeam(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.sectionService.LoadTeam(ctx).Items))
}

// GetMentors lists the mentors in display order
// @Router /mentors [get]
func (c *ContentController) GetMentors(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.sectionService.LoadMentors(ctx).Items))
}

// GetPodcasts lists the podcast episodes, newest first
// @Router /podcasts [get]
func (c *ContentController) GetPodcasts(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.sectionService.LoadPodcasts(ctx).Items))
}

// GetEvents lists events, optionally filtered by ?status=all|upcoming|past
// @Router /events [get]
func (c *ContentController) GetEvents(ctx *gin.Context) {
	filter := views.ParseEventFilter(ctx.Query("status"))
	events := c.sectionService.LoadEvents(ctx).Items
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(views.FilterEvents(events, filter)))
}
