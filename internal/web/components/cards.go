package components

import (
	"time"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/kartavya/website/internal/app/models"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func externalLink(href string, children ...cmp.Node) cmp.Node {
	return g.A(g.Href(href), g.Target("_blank"), g.Rel("noopener noreferrer"), cmp.Group(children))
}

// OrganizationCard links to the NGO's detail overlay.
func OrganizationCard(o models.Organization) cmp.Node {
	return g.A(
		g.Href("/?ngo="+o.ID+"#ngos"),
		g.Class("ngo-card block bg-white rounded-xl shadow-md hover:shadow-xl overflow-hidden"),
		cmp.Attr("data-ngo-id", o.ID),
		g.Div(
			g.Class("h-48 bg-gradient-to-br from-emerald-100 to-teal-100 flex items-center justify-center p-8"),
			g.Img(g.Src(o.LogoURL), g.Alt(o.Name), g.Class("max-h-full max-w-full object-contain")),
		),
		g.Div(
			g.Class("p-6"),
			g.H3(g.Class("text-xl font-bold text-gray-900 mb-2"), cmp.Text(o.Name)),
			g.P(g.Class("text-gray-600 mb-4 line-clamp-3"), cmp.Text(o.Description)),
			g.Div(
				g.Class("text-sm text-gray-500"),
				cmp.Text("Incubated: "),
				cmp.El("time", cmp.Attr("datetime", o.IncubationDate.Format("2006-01-02")), cmp.Text(shortDate(o.IncubationDate))),
			),
		),
	)
}

// TeamCard shows a team member with optional bio and contact links.
func TeamCard(m models.TeamMember) cmp.Node {
	return g.Div(
		g.Class("team-card bg-white rounded-xl shadow-md overflow-hidden"),
		g.Div(g.Class("aspect-square overflow-hidden"), g.Img(g.Src(m.PhotoURL), g.Alt(m.Name), g.Class("w-full h-full object-cover"))),
		g.Div(
			g.Class("p-6"),
			g.H3(g.Class("text-xl font-bold text-gray-900 mb-1"), cmp.Text(m.Name)),
			g.P(g.Class("text-emerald-600 font-medium mb-3"), cmp.Text(m.Role)),
			cmp.If(deref(m.Bio) != "", g.P(g.Class("text-gray-600 text-sm mb-4"), cmp.Text(deref(m.Bio)))),
			g.Div(
				g.Class("flex gap-3"),
				cmp.If(deref(m.Email) != "", g.A(g.Href("mailto:"+deref(m.Email)), g.Title("Email"), cmp.Text("Email"))),
				cmp.If(deref(m.LinkedIn) != "", externalLink(deref(m.LinkedIn), g.Title("LinkedIn"), cmp.Text("LinkedIn"))),
			),
		),
	)
}

// MentorCard shows a mentor's expertise, bio and contact details.
func MentorCard(m models.Mentor) cmp.Node {
	return g.Div(
		g.Class("mentor-card bg-gradient-to-br from-white to-emerald-50 rounded-xl shadow-md p-6 flex gap-6"),
		g.Img(g.Src(m.PhotoURL), g.Alt(m.Name), g.Class("w-24 h-24 rounded-full object-cover")),
		g.Div(
			g.Class("flex-1"),
			g.H3(g.Class("text-xl font-bold text-gray-900 mb-1"), cmp.Text(m.Name)),
			g.P(g.Class("text-emerald-600 font-medium mb-3"), cmp.Text(m.Expertise)),
			g.P(g.Class("text-gray-600 text-sm mb-4"), cmp.Text(m.Bio)),
			g.Div(
				g.Class("space-y-2 text-sm"),
				g.A(g.Href("mailto:"+m.Email), g.Class("block text-gray-700"), cmp.Text(m.Email)),
				cmp.If(deref(m.Phone) != "", g.A(g.Href("tel:"+deref(m.Phone)), g.Class("block text-gray-700"), cmp.Text(deref(m.Phone)))),
				cmp.If(deref(m.LinkedIn) != "", externalLink(deref(m.LinkedIn), g.Class("block text-gray-700"), cmp.Text("LinkedIn Profile"))),
			),
		),
	)
}

// PodcastCard shows an episode; the cover links to its audio or video.
func PodcastCard(p models.Podcast) cmp.Node {
	play := p.PlayURL()
	cover := g.Div(
		g.Class("relative aspect-video overflow-hidden"),
		g.Img(g.Src(p.CoverImageURL), g.Alt(p.Title), g.Class("w-full h-full object-cover")),
		cmp.If(play != "", g.Div(g.Class("play-overlay absolute inset-0 flex items-center justify-center"), g.Span(cmp.Text("Play")))),
	)
	return g.Div(
		g.Class("podcast-card bg-white rounded-xl shadow-md overflow-hidden"),
		cmp.If(play != "", externalLink(play, cover)),
		cmp.If(play == "", cover),
		g.Div(
			g.Class("p-6"),
			g.H3(g.Class("text-lg font-bold text-gray-900 mb-2"), cmp.Text(p.Title)),
			g.P(g.Class("text-gray-600 text-sm mb-4 line-clamp-2"), cmp.Text(p.Description)),
			g.Div(
				g.Class("flex justify-between text-sm text-gray-500"),
				cmp.El("time", cmp.Attr("datetime", p.PublishedDate.Format("2006-01-02")), cmp.Text(shortDate(p.PublishedDate))),
				cmp.If(deref(p.Duration) != "", g.Span(cmp.Text(deref(p.Duration)))),
			),
		),
	)
}

var statusBadgeClass = map[models.EventStatus]string{
	models.EventStatusUpcoming: "bg-emerald-100 text-emerald-700",
	models.EventStatusOngoing:  "bg-blue-100 text-blue-700",
	models.EventStatusPast:     "bg-gray-100 text-gray-700",
}

// EventCard shows an event with its status badge. hidden cards stay in the
// DOM for client-side filtering.
func EventCard(e models.Event, now time.Time, hidden bool) cmp.Node {
	status := e.Status.Display()
	return g.Div(
		g.Class("event-card bg-gradient-to-br from-white to-gray-50 rounded-xl shadow-md overflow-hidden"),
		cmp.Attr("data-status", string(e.Status)),
		cmp.If(hidden, cmp.Attr("hidden")),
		cmp.If(deref(e.ImageURL) != "", g.Div(
			g.Class("h-48 overflow-hidden"),
			g.Img(g.Src(deref(e.ImageURL)), g.Alt(e.Title), g.Class("w-full h-full object-cover")),
		)),
		g.Div(
			g.Class("p-6"),
			g.Span(g.Class("status-badge px-3 py-1 rounded-full text-xs font-semibold "+statusBadgeClass[status]), cmp.Text(string(status))),
			g.H3(g.Class("text-xl font-bold text-gray-900 mt-3 mb-3"), cmp.Text(e.Title)),
			g.P(g.Class("text-gray-600 mb-4"), cmp.Text(e.Description)),
			g.Div(
				g.Class("space-y-2 text-sm text-gray-600"),
				g.Div(cmp.El("time",
					cmp.Attr("datetime", e.EventDate.Format(time.RFC3339)),
					cmp.Text(longDate(e.EventDate)),
				)),
				g.Div(cmp.Text(clockTime(e.EventDate)), g.Span(g.Class("text-gray-400"), cmp.Text(" ("+relativeTime(e.EventDate, now)+")"))),
				g.Div(cmp.Text(e.Location)),
			),
		),
	)
}
