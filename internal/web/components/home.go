package components

import (
	"time"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/app/views"
)

// HomeData is everything the single page needs.
type HomeData struct {
	Site        SiteInfo
	Progressive bool
	Now         time.Time

	Organizations views.Section[models.Organization]
	Team          views.Section[models.TeamMember]
	Mentors       views.Section[models.Mentor]
	Podcasts      views.Section[models.Podcast]
	Events        views.Section[models.Event]

	EventFilter views.EventFilter
	Overlay     views.OverlaySnapshot
	Form        views.FormSnapshot
	RevertAfter time.Duration
}

// Home renders the whole site in page order.
func Home(d HomeData) cmp.Node {
	now := d.Now
	if now.IsZero() {
		now = time.Now()
	}
	return Page(d.Site, d.Site.Name+" - "+d.Site.Tagline,
		Header(d.Site),
		g.Main(
			Hero(d.Site),
			OrganizationsSection(d.Organizations, d.Progressive),
			TeamSection(d.Team, d.Progressive),
			MentorsSection(d.Mentors, d.Progressive),
			PodcastsSection(d.Podcasts, d.Progressive),
			EventsSection(d.Events, d.EventFilter, now, d.Progressive),
			ApplySection(d.Form, d.RevertAfter),
		),
		Footer(d.Site),
		OverlayHost(d.Overlay),
	)
}
