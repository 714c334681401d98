package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/app/services"
	"github.com/kartavya/website/internal/app/views"
	"github.com/kartavya/website/internal/pkg/apperrors"
	"github.com/kartavya/website/internal/web/components"
	"github.com/rs/zerolog"
)

// PageConfig holds the rendering options of the site
type PageConfig struct {
	Site        components.SiteInfo
	Progressive bool
	RevertAfter time.Duration
}

// PageController renders the single-page site and its fragments
type PageController struct {
	sectionService     services.SectionService
	applicationService services.ApplicationService
	cfg                PageConfig
	logger             zerolog.Logger
	now                func() time.Time
}

// NewPageController creates a new PageController
func NewPageController(sectionService services.SectionService, applicationService services.ApplicationService, cfg PageConfig, logger zerolog.Logger) *PageController {
	if cfg.RevertAfter <= 0 {
		cfg.RevertAfter = views.DefaultRevertAfter
	}
	return &PageController{
		sectionService:     sectionService,
		applicationService: applicationService,
		cfg:                cfg,
		logger:             logger.With().Str("component", "page_controller").Logger(),
		now:                time.Now,
	}
}

func (c *PageController) newOverlay() *views.DetailOverlay {
	return views.NewDetailOverlay(c.sectionService.ListMembers, c.logger)
}

func (c *PageController) newForm() *views.ApplicationForm {
	return views.NewApplicationForm(views.FormConfig{
		Submitter:   c.applicationService,
		Validate:    c.applicationService.Validate,
		RevertAfter: c.cfg.RevertAfter,
		Logger:      c.logger,
	})
}

// homeData assembles the page. In progressive mode every section stays in its
// loading state and is fetched by the page script.
func (c *PageController) homeData(ctx *gin.Context, form views.FormSnapshot) components.HomeData {
	data := components.HomeData{
		Site:        c.cfg.Site,
		Progressive: c.cfg.Progressive,
		Now:         c.now(),
		EventFilter: views.ParseEventFilter(ctx.Query("events")),
		Form:        form,
		RevertAfter: c.cfg.RevertAfter,
	}

	if c.cfg.Progressive {
		data.Organizations = views.NewSection[models.Organization](views.SectionNGOs)
		data.Team = views.NewSection[models.TeamMember](views.SectionTeam)
		data.Mentors = views.NewSection[models.Mentor](views.SectionMentors)
		data.Podcasts = views.NewSection[models.Podcast](views.SectionPodcasts)
		data.Events = views.NewSection[models.Event](views.SectionEvents)
	} else {
		all := c.sectionService.LoadAll(ctx)
		data.Organizations = all.Organizations
		data.Team = all.Team
		data.Mentors = all.Mentors
		data.Podcasts = all.Podcasts
		data.Events = all.Events
	}

	if id := ctx.Query("ngo"); id != "" {
		if org := c.resolveOrganization(ctx, data.Organizations, id); org != nil {
			data.Overlay = c.newOverlay().OpenSync(ctx.Request.Context(), *org)
		}
	}
	return data
}

// resolveOrganization finds id among the loaded NGOs, or asks the store when
// the list has not been loaded yet.
func (c *PageController) resolveOrganization(ctx *gin.Context, loaded views.Section[models.Organization], id string) *models.Organization {
	if !loaded.Loading {
		for i := range loaded.Items {
			if loaded.Items[i].ID == id {
				org := loaded.Items[i]
				return &org
			}
		}
		return nil
	}
	org, err := c.sectionService.FindOrganization(ctx, id)
	if err != nil {
		return nil
	}
	return org
}

// Home renders the full page
func (c *PageController) Home(ctx *gin.Context) {
	form := views.FormSnapshot{State: views.FormEditing, ClientToken: uuid.NewString()}
	if ctx.Query("applied") == "1" {
		form.State = views.FormSuccess
	}
	renderHTML(ctx, http.StatusOK, components.Home(c.homeData(ctx, form)))
}

// Section renders one section body for progressive loading
func (c *PageController) Section(ctx *gin.Context) {
	name, ok := views.ParseSectionName(ctx.Param("name"))
	if !ok {
		ctx.String(http.StatusNotFound, apperrors.ErrUnknownSection.Error())
		return
	}

	switch name {
	case views.SectionNGOs:
		renderHTML(ctx, http.StatusOK, components.OrganizationsList(c.sectionService.LoadOrganizations(ctx), false))
	case views.SectionTeam:
		renderHTML(ctx, http.StatusOK, components.TeamList(c.sectionService.LoadTeam(ctx), false))
	case views.SectionMentors:
		renderHTML(ctx, http.StatusOK, components.MentorsList(c.sectionService.LoadMentors(ctx), false))
	case views.SectionPodcasts:
		renderHTML(ctx, http.StatusOK, components.PodcastsList(c.sectionService.LoadPodcasts(ctx), false))
	case views.SectionEvents:
		filter := views.ParseEventFilter(ctx.Query("filter"))
		renderHTML(ctx, http.StatusOK, components.EventsList(c.sectionService.LoadEvents(ctx), filter, c.now(), false))
	}
}

// SectionItem renders the detail overlay of one NGO. Only the ngos section
// has item fragments.
func (c *PageController) SectionItem(ctx *gin.Context) {
	if views.SectionName(ctx.Param("name")) != views.SectionNGOs {
		ctx.String(http.StatusNotFound, apperrors.ErrUnknownSection.Error())
		return
	}
	org, err := c.sectionService.FindOrganization(ctx, ctx.Param("id"))
	if err != nil {
		if !errors.Is(err, apperrors.ErrOrganizationNotFound) {
			c.logger.Error().Err(err).Str("ngo_id", ctx.Param("id")).Msg("Error loading organization")
		}
		ctx.String(http.StatusNotFound, apperrors.ErrOrganizationNotFound.Error())
		return
	}
	renderHTML(ctx, http.StatusOK, components.Overlay(c.newOverlay().OpenSync(ctx.Request.Context(), *org)))
}

// postedApplication reads the form fields of POST /apply.
func postedApplication(ctx *gin.Context) models.Application {
	var app models.Application
	for _, field := range models.ApplicationFields {
		app.Set(field, ctx.PostForm(field))
	}
	return app
}

// postedClientToken returns the form's client token, or "" when it is missing
// or not a UUID so the caller issues a fresh one instead of replaying a token
// the store will always reject.
func postedClientToken(ctx *gin.Context) string {
	token := ctx.PostForm("client_token")
	if _, err := uuid.Parse(token); err != nil {
		return ""
	}
	return token
}

// Apply handles the no-script form post. Success redirects so a reload cannot
// resubmit; failures re-render the page with the values kept.
func (c *PageController) Apply(ctx *gin.Context) {
	form := c.newForm()
	form.SetValues(postedApplication(ctx))
	form.SetClientToken(postedClientToken(ctx))

	if err := form.Submit(ctx.Request.Context()); err != nil {
		renderHTML(ctx, http.StatusOK, components.Home(c.homeData(ctx, form.Snapshot())))
		return
	}
	// The browser shows the success panel and reverts it itself.
	form.Dismiss()
	ctx.Redirect(http.StatusSeeOther, "/?applied=1#apply")
}

// ApplyRateLimited answers POST /apply when the client is over its budget.
// The applicant sees the same generic error as for a failed insert.
func (c *PageController) ApplyRateLimited(ctx *gin.Context) {
	form := views.FormSnapshot{
		State:       views.FormEditing,
		Values:      postedApplication(ctx),
		Error:       apperrors.SubmissionFailedMessage,
		ClientToken: postedClientToken(ctx),
	}
	if form.ClientToken == "" {
		form.ClientToken = uuid.NewString()
	}
	renderHTML(ctx, http.StatusTooManyRequests, components.Home(c.homeData(ctx, form)))
}
