package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kartavya/website/internal/pkg/apperrors"
	"github.com/kartavya/website/internal/pkg/metrics"
	"github.com/rs/zerolog"
)

const svgContentType = "image/svg+xml"

// OGImageController serves social preview images
type OGImageController struct {
	render      func(title, description string) string
	cacheMaxAge int
	metrics     *metrics.Metrics
	logger      zerolog.Logger
}

// NewOGImageController creates a new OGImageController. render is usually
// ogimage.Renderer.Render.
func NewOGImageController(render func(title, description string) string, cacheMaxAge int, m *metrics.Metrics, logger zerolog.Logger) *OGImageController {
	if cacheMaxAge <= 0 {
		cacheMaxAge = 3600
	}
	return &OGImageController{
		render:      render,
		cacheMaxAge: cacheMaxAge,
		metrics:     m,
		logger:      logger.With().Str("component", "og_image").Logger(),
	}
}

func setCORSHeaders(ctx *gin.Context) {
	ctx.Header("Access-Control-Allow-Origin", "*")
	ctx.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	ctx.Header("Access-Control-Allow-Headers", "Content-Type")
}

// Preflight answers CORS preflight requests with an empty body
func (c *OGImageController) Preflight(ctx *gin.Context) {
	setCORSHeaders(ctx)
	ctx.Status(http.StatusOK)
}

// Image renders the SVG card for ?title= and ?description=. POST requests may
// send the same fields as form values.
// @Produce image/svg+xml
// @Router /og-image [get]
func (c *OGImageController) Image(ctx *gin.Context) {
	setCORSHeaders(ctx)

	title := ctx.Query("title")
	description := ctx.Query("description")
	if ctx.Request.Method == http.MethodPost {
		if title == "" {
			title = ctx.PostForm("title")
		}
		if description == "" {
			description = ctx.PostForm("description")
		}
	}

	svg, err := c.safeRender(title, description)
	if err != nil {
		c.logger.Error().Err(err).Msg("Error generating image")
		ctx.Data(http.StatusInternalServerError, "text/plain; charset=utf-8", []byte("Error generating image"))
		return
	}

	c.metrics.OGImageRendered()
	ctx.Header("Cache-Control", "public, max-age="+strconv.Itoa(c.cacheMaxAge))
	ctx.Data(http.StatusOK, svgContentType, []byte(svg))
}

func (c *OGImageController) safeRender(title, description string) (svg string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", apperrors.ErrImageRender, r)
		}
	}()
	return c.render(title, description), nil
}
