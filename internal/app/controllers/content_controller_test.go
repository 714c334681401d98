package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kartavya/website/internal/app/controllers"
	"github.com/kartavya/website/internal/app/models"
)

type listEnvelope struct {
	Success bool                     `json:"success"`
	Data    []map[string]interface{} `json:"data"`
}

var _ = Describe("ContentController", func() {
	var (
		router *gin.Engine
		svc    *mockSectionService
	)

	get := func(path string) (*httptest.ResponseRecorder, listEnvelope) {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		var env listEnvelope
		Expect(json.Unmarshal(w.Body.Bytes(), &env)).To(Succeed())
		return w, env
	}

	BeforeEach(func() {
		router = gin.New()
		svc = &mockSectionService{}
		h := controllers.NewContentController(svc)
		router.GET("/ngos", h.GetOrganizations)
		router.GET("/ngos/:id/members", h.GetOrganizationMembers)
		router.GET("/team", h.GetTeam)
		router.GET("/events", h.GetEvents)
	})

	It("returns an empty array rather than null when nothing is stored", func() {
		w, env := get("/team")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(env.Success).To(BeTrue())
		Expect(w.Body.String()).To(ContainSubstring(`"data":[]`))
	})

	It("lists organizations in service order", func() {
		svc.organizationsFn = func() []models.Organization {
			return []models.Organization{{ID: "a", Name: "First"}, {ID: "b", Name: "Second"}}
		}
		_, env := get("/ngos")
		Expect(env.Data).To(HaveLen(2))
		Expect(env.Data[0]["name"]).To(Equal("First"))
		Expect(env.Data[1]["name"]).To(Equal("Second"))
	})

	It("passes the organization id to the member read", func() {
		var seen string
		svc.membersFn = func(id string) ([]models.OrganizationMember, error) {
			seen = id
			return []models.OrganizationMember{{Name: "Ravi", Role: "Ops"}}, nil
		}
		_, env := get("/ngos/abc/members")
		Expect(seen).To(Equal("abc"))
		Expect(env.Data).To(HaveLen(1))
	})

	DescribeTable("filters events by status",
		func(query string, want []string) {
			svc.eventsFn = func() []models.Event {
				return []models.Event{
					{ID: "1", Status: models.EventStatusUpcoming},
					{ID: "2", Status: models.EventStatusOngoing},
					{ID: "3", Status: models.EventStatusPast},
				}
			}
			_, env := get("/events" + query)
			ids := make([]string, 0, len(env.Data))
			for _, e := range env.Data {
				ids = append(ids, e["id"].(string))
			}
			Expect(ids).To(Equal(want))
		},
		Entry("no filter", "", []string{"1", "2", "3"}),
		Entry("all", "?status=all", []string{"1", "2", "3"}),
		Entry("upcoming", "?status=upcoming", []string{"1"}),
		Entry("past", "?status=past", []string{"3"}),
		Entry("unknown falls back to all", "?status=ongoing", []string{"1", "2", "3"}),
	)
})
