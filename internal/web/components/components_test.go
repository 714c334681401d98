package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"

	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/app/views"
)

func render(t *testing.T, n cmp.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func strPtr(s string) *string { return &s }

var testNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func testSite() SiteInfo {
	return SiteInfo{
		Name: "KARTAVYA", Tagline: "NGO Incubator", Domain: "kartavya.org", BaseURL: "https://kartavya.org",
		ContactEmail: "info@kartavya.org", ContactPhone: "+91 (555) 123-4567", Location: "Mumbai, India", Year: 2025,
	}
}

func TestSectionLoadingRendersSkeletons(t *testing.T) {
	sec := views.NewSection[models.Mentor](views.SectionMentors)
	out := render(t, MentorsList(sec, false))
	assert.Equal(t, 2, strings.Count(out, "skeleton"))
	assert.Contains(t, out, `data-state="loading"`)
	assert.NotContains(t, out, "data-section-src")

	out = render(t, MentorsList(sec, true))
	assert.Contains(t, out, `data-section-src="/sections/mentors"`)
	assert.Contains(t, out, `data-empty-message="Mentor information coming soon!"`)
}

func TestProgressiveEventsSkeletonCarriesFilteredEmptyMessage(t *testing.T) {
	sec := views.NewSection[models.Event](views.SectionEvents)
	out := render(t, EventsList(sec, views.FilterUpcoming, testNow, true))
	assert.Contains(t, out, `data-section-src="/sections/events?filter=upcoming"`)
	assert.Contains(t, out, `data-empty-message="No upcoming events found."`)
}

func TestPageScriptFallsBackToEmptyMessage(t *testing.T) {
	assert.Contains(t, pageJS, `el.getAttribute("data-empty-message")`)
	assert.NotContains(t, pageJS, `el.innerHTML = ""`)
}

func TestSectionEmptyMessages(t *testing.T) {
	sec := views.Section[models.Organization]{Name: views.SectionNGOs, Items: []models.Organization{}}
	out := render(t, OrganizationsList(sec, false))
	assert.Contains(t, out, "No NGOs currently incubated. Check back soon!")
	assert.Contains(t, out, `data-state="empty"`)
}

func TestOrganizationCard(t *testing.T) {
	o := models.Organization{
		ID: "b7d7c8b2-7a64-4c3b-9f0c-3c2f1f8a7a10", Name: "Green <Earth>", LogoURL: "https://img/logo.png",
		Description:    "Trees",
		IncubationDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
	out := render(t, OrganizationCard(o))
	assert.Contains(t, out, "Incubated: ")
	assert.Contains(t, out, "1/15/2024")
	assert.Contains(t, out, "Green &lt;Earth&gt;")
	assert.Contains(t, out, `data-ngo-id="`+o.ID+`"`)
}

func TestEventsListHidesNonMatching(t *testing.T) {
	sec := views.Section[models.Event]{Name: views.SectionEvents, Items: []models.Event{
		{ID: "1", Title: "Workshop", Status: models.EventStatusUpcoming, EventDate: testNow.Add(48 * time.Hour)},
		{ID: "2", Title: "Summit", Status: models.EventStatusOngoing, EventDate: testNow},
		{ID: "3", Title: "Seminar", Status: models.EventStatusPast, EventDate: testNow.Add(-72 * time.Hour)},
	}}

	out := render(t, EventsList(sec, views.FilterUpcoming, testNow, false))
	assert.Equal(t, 2, strings.Count(out, `data-status="ongoing" hidden`)+strings.Count(out, `data-status="past" hidden`))
	assert.NotContains(t, out, `data-status="upcoming" hidden`)
	assert.Contains(t, out, "from now")

	out = render(t, EventsList(sec, views.FilterAll, testNow, false))
	assert.NotRegexp(t, `data-status="[a-z]+" hidden`, out)
}

func TestEventsListFilteredToNothing(t *testing.T) {
	sec := views.Section[models.Event]{Name: views.SectionEvents, Items: []models.Event{
		{ID: "1", Status: models.EventStatusUpcoming, EventDate: testNow},
	}}
	out := render(t, EventsList(sec, views.FilterPast, testNow, false))
	assert.Contains(t, out, "No past events found.")
	assert.Regexp(t, `events-empty[^>]*>`, out)
	assert.NotRegexp(t, `events-empty[^"]*" hidden`, out)
}

func TestEventsListWithNoEventsKeepsFilterableEmptyState(t *testing.T) {
	sec := views.Section[models.Event]{Name: views.SectionEvents, Items: []models.Event{}}
	out := render(t, EventsList(sec, views.FilterAll, testNow, false))
	assert.Contains(t, out, `data-state="empty"`)
	assert.Regexp(t, `class="events-empty[^"]*"><p class="empty-message[^"]*">No events found\.</p>`, out)
	assert.NotRegexp(t, `events-empty[^"]*" hidden`, out)
}

func TestEventCardUnknownStatusShownAsPast(t *testing.T) {
	out := render(t, EventCard(models.Event{Title: "X", Status: "cancelled", EventDate: testNow}, testNow, false))
	assert.Contains(t, out, "bg-gray-100 text-gray-700")
	assert.Contains(t, out, ">past<")
}

func TestEventFilterBarMarksCurrent(t *testing.T) {
	out := render(t, EventFilterBar(views.FilterPast))
	assert.Contains(t, out, "All Events")
	assert.Contains(t, out, "Upcoming")
	assert.Contains(t, out, "Past Events")
	assert.Equal(t, 1, strings.Count(out, `aria-pressed="true"`))
	assert.Contains(t, out, `href="/?events=past#events"`)
}

func TestOverlayClosedRendersNothing(t *testing.T) {
	assert.Equal(t, `<div id="ngo-overlay"></div>`, render(t, OverlayHost(views.OverlaySnapshot{})))
}

func TestOverlayMembers(t *testing.T) {
	org := &models.Organization{ID: "o1", Name: "Seva", Website: strPtr("https://seva.org"), IncubationDate: testNow}

	out := render(t, Overlay(views.OverlaySnapshot{Organization: org}))
	assert.Contains(t, out, "Visit Website")
	assert.Contains(t, out, `rel="noopener noreferrer"`)
	assert.Contains(t, out, "About")
	assert.NotContains(t, out, "Team Members")
	assert.NotContains(t, out, "Founded")

	out = render(t, Overlay(views.OverlaySnapshot{Organization: org, Members: []models.OrganizationMember{
		{Name: "asha", Role: "Lead"},
		{Name: "Ravi", Role: "Ops", PhotoURL: strPtr("https://img/ravi.png"), Bio: strPtr("Runs things")},
	}}))
	assert.Contains(t, out, "Team Members")
	assert.Contains(t, out, ">a</div>")
	assert.Contains(t, out, "https://img/ravi.png")
	assert.Contains(t, out, "Runs things")
}

func TestApplySectionStates(t *testing.T) {
	editing := views.FormSnapshot{
		State:       views.FormEditing,
		Values:      models.Application{NGOName: "Seva"},
		Error:       "Failed to submit application. Please try again.",
		FieldErrors: map[string]string{"email": "email is required"},
		ClientToken: "tok",
	}
	out := render(t, ApplySection(editing, 5*time.Second))
	assert.Contains(t, out, `value="Seva"`)
	assert.Contains(t, out, "Failed to submit application. Please try again.")
	assert.Contains(t, out, "email is required")
	assert.Contains(t, out, `name="client_token" value="tok"`)
	assert.NotContains(t, out, "success-panel")
	assert.Contains(t, out, "Submit Application")

	out = render(t, ApplySection(views.FormSnapshot{State: views.FormSubmitting}, 0))
	assert.Contains(t, out, "Submitting...")
	assert.Contains(t, out, "disabled")

	out = render(t, ApplySection(views.FormSnapshot{State: views.FormSuccess, ClientToken: "next"}, 5*time.Second))
	assert.Contains(t, out, "Application Submitted!")
	assert.Contains(t, out, `data-revert-after="5000"`)
	assert.Contains(t, out, `id="application-form" method="post" action="/apply#apply" class="space-y-6" hidden`)
}

func TestHomeRendersAllSectionsInOrder(t *testing.T) {
	out := render(t, Home(HomeData{
		Site:          testSite(),
		Now:           testNow,
		Organizations: views.NewSection[models.Organization](views.SectionNGOs),
		Team:          views.NewSection[models.TeamMember](views.SectionTeam),
		Mentors:       views.NewSection[models.Mentor](views.SectionMentors),
		Podcasts:      views.NewSection[models.Podcast](views.SectionPodcasts),
		Events:        views.NewSection[models.Event](views.SectionEvents),
		EventFilter:   views.FilterAll,
		Form:          views.FormSnapshot{State: views.FormEditing},
	}))
	require.True(t, strings.HasPrefix(out, "<!doctype html>"))
	last := -1
	for _, id := range []string{`id="ngos"`, `id="team"`, `id="mentors"`, `id="podcasts"`, `id="events"`, `id="apply"`} {
		i := strings.Index(out, id)
		require.Greater(t, i, last, id)
		last = i
	}
	assert.Contains(t, out, "© 2025 KARTAVYA. All rights reserved.")
	assert.Contains(t, out, "/og-image?")
}
