package controllers_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/kartavya/website/internal/app/controllers"
	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/app/services"
	"github.com/kartavya/website/internal/pkg/apperrors"
	"github.com/kartavya/website/internal/web/components"
)

var _ = Describe("PageController", func() {
	var (
		router   *gin.Engine
		sections *mockSectionService
		apps     *mockApplicationService
		cfg      controllers.PageConfig
	)

	mount := func() {
		router = gin.New()
		h := controllers.NewPageController(sections, apps, cfg, zerolog.Nop())
		router.GET("/", h.Home)
		router.GET("/sections/:name", h.Section)
		router.GET("/sections/:name/:id", h.SectionItem)
		router.POST("/apply", h.Apply)
		router.POST("/apply-limited", h.ApplyRateLimited)
	}

	get := func(target string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		return w
	}

	postForm := func(target string, values url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	formValues := func(app models.Application) url.Values {
		v := url.Values{}
		for _, f := range models.ApplicationFields {
			v.Set(f, app.Get(f))
		}
		return v
	}

	org := models.Organization{
		ID: "7f1a2b3c-0000-4000-8000-000000000001", Name: "Seva Trust",
		Description: "Education", IncubationDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	BeforeEach(func() {
		sections = &mockSectionService{}
		apps = &mockApplicationService{}
		cfg = controllers.PageConfig{
			Site:        components.SiteInfo{Name: "KARTAVYA", Tagline: "NGO Incubator", Year: 2025},
			RevertAfter: 5 * time.Second,
		}
		mount()
	})

	Describe("Home", func() {
		It("renders every section once all loads resolve", func() {
			w := get("/")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Header().Get("Content-Type")).To(HavePrefix("text/html"))
			Expect(sections.loadAllCalls).To(Equal(1))
			body := w.Body.String()
			Expect(body).To(ContainSubstring("No NGOs currently incubated. Check back soon!"))
			Expect(body).To(ContainSubstring("Team information coming soon!"))
			Expect(body).To(ContainSubstring("No events found."))
			Expect(body).NotTo(ContainSubstring(`data-state="loading"`))
		})

		It("leaves sections to the page script in progressive mode", func() {
			cfg.Progressive = true
			mount()
			w := get("/")

			Expect(sections.loadAllCalls).To(BeZero())
			Expect(w.Body.String()).To(ContainSubstring(`data-section-src="/sections/ngos"`))
			Expect(strings.Count(w.Body.String(), "data-section-src=")).To(Equal(5))
		})

		It("opens the overlay for a known NGO with its members", func() {
			sections.organizationsFn = func() []models.Organization { return []models.Organization{org} }
			sections.membersFn = func(id string) ([]models.OrganizationMember, error) {
				if id != org.ID {
					return nil, errors.New("unexpected id " + id)
				}
				return []models.OrganizationMember{{Name: "Ravi", Role: "Ops"}}, nil
			}
			w := get("/?ngo=" + org.ID)

			Expect(w.Body.String()).To(ContainSubstring(`data-overlay-for="` + org.ID + `"`))
			Expect(w.Body.String()).To(ContainSubstring("Team Members"))
		})

		It("shows no overlay for an unknown NGO", func() {
			sections.organizationsFn = func() []models.Organization { return []models.Organization{org} }
			w := get("/?ngo=missing")

			Expect(w.Body.String()).NotTo(ContainSubstring("data-overlay-for"))
		})

		It("shows the success panel after a redirect", func() {
			w := get("/?applied=1")
			Expect(w.Body.String()).To(ContainSubstring("Application Submitted!"))
			Expect(w.Body.String()).To(ContainSubstring(`data-revert-after="5000"`))
		})
	})

	Describe("Section fragments", func() {
		It("renders a known section", func() {
			w := get("/sections/mentors")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(ContainSubstring("Mentor information coming soon!"))
		})

		It("applies the events filter", func() {
			sections.eventsFn = func() []models.Event {
				return []models.Event{{ID: "1", Status: models.EventStatusUpcoming, EventDate: time.Now()}}
			}
			w := get("/sections/events?filter=past")
			Expect(w.Body.String()).To(ContainSubstring("No past events found."))
		})

		It("returns 404 for unknown sections", func() {
			Expect(get("/sections/sponsors").Code).To(Equal(http.StatusNotFound))
		})

		It("renders the overlay fragment of an NGO", func() {
			sections.organizationsFn = func() []models.Organization { return []models.Organization{org} }
			w := get("/sections/ngos/" + org.ID)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(HavePrefix(`<div class="overlay`))
			Expect(w.Body.String()).NotTo(ContainSubstring("Team Members"))
		})

		It("returns 404 for an inactive or unknown NGO", func() {
			Expect(get("/sections/ngos/nope").Code).To(Equal(http.StatusNotFound))
			Expect(get("/sections/team/" + org.ID).Code).To(Equal(http.StatusNotFound))
		})

		It("returns 404 when the lookup itself fails", func() {
			sections.findFn = func(string) (*models.Organization, error) { return nil, errors.New("timeout") }
			Expect(get("/sections/ngos/" + org.ID).Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Apply", func() {
		It("redirects to the success panel after one insert", func() {
			values := formValues(validApplication())
			values.Set("client_token", "0b7c2d4e-1111-4aaa-8bbb-123456789abc")
			w := postForm("/apply", values)

			Expect(w.Code).To(Equal(http.StatusSeeOther))
			Expect(w.Header().Get("Location")).To(Equal("/?applied=1#apply"))
			Expect(apps.calls).To(HaveLen(1))
			Expect(apps.calls[0].app).To(Equal(validApplication()))
			Expect(apps.calls[0].token).To(Equal("0b7c2d4e-1111-4aaa-8bbb-123456789abc"))
		})

		It("replaces a malformed client token with a fresh one", func() {
			values := formValues(validApplication())
			values.Set("client_token", "not-a-uuid")
			w := postForm("/apply", values)

			Expect(w.Code).To(Equal(http.StatusSeeOther))
			Expect(apps.calls).To(HaveLen(1))
			token := apps.calls[0].token
			Expect(token).NotTo(Equal("not-a-uuid"))
			_, err := uuid.Parse(token)
			Expect(err).NotTo(HaveOccurred())
		})

		It("does not carry a malformed token into the re-rendered form", func() {
			values := formValues(validApplication())
			values.Set("client_token", "not-a-uuid")
			w := postForm("/apply-limited", values)

			Expect(w.Code).To(Equal(http.StatusTooManyRequests))
			Expect(w.Body.String()).NotTo(ContainSubstring("not-a-uuid"))
		})

		It("keeps the values and shows the generic error when the insert fails", func() {
			apps.submitFn = func(models.Application, string) (services.SubmissionResult, error) {
				return services.SubmissionResult{}, fmt.Errorf("%w: %w", apperrors.ErrSubmissionFailed, errors.New("pq: deadlock"))
			}
			w := postForm("/apply", formValues(validApplication()))

			Expect(w.Code).To(Equal(http.StatusOK))
			body := w.Body.String()
			Expect(body).To(ContainSubstring(apperrors.SubmissionFailedMessage))
			Expect(body).To(ContainSubstring(`value="Seva Trust"`))
			Expect(body).NotTo(ContainSubstring("deadlock"))
		})

		It("highlights invalid fields without inserting", func() {
			app := validApplication()
			app.Email = "nope"
			w := postForm("/apply", formValues(app))

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(apps.calls).To(BeEmpty())
			Expect(w.Body.String()).To(ContainSubstring("field-error"))
			Expect(w.Body.String()).To(ContainSubstring(`value="nope"`))
		})

		It("shows the generic error when rate limited", func() {
			w := postForm("/apply-limited", formValues(validApplication()))

			Expect(w.Code).To(Equal(http.StatusTooManyRequests))
			Expect(w.Body.String()).To(ContainSubstring(apperrors.SubmissionFailedMessage))
			Expect(apps.calls).To(BeEmpty())
		})
	})
})
