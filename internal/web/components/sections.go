package components

import (
	"strconv"
	"time"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/app/views"
)

type sectionCopy struct {
	heading  string
	subtitle string
	bg       string
	grid     string
}

var copyBySection = map[views.SectionName]sectionCopy{
	views.SectionNGOs: {
		"Our Incubated NGOs",
		"Meet the innovative organizations we're proud to support in their journey to create meaningful social impact",
		"bg-white", "grid md:grid-cols-2 lg:grid-cols-3 gap-8",
	},
	views.SectionTeam: {
		"Our Team",
		"Meet the passionate individuals driving KARTAVYA's mission to empower NGOs",
		"bg-gradient-to-br from-emerald-50 to-teal-50", "grid md:grid-cols-2 lg:grid-cols-3 gap-8",
	},
	views.SectionMentors: {
		"Our Mentors",
		"Industry experts and thought leaders guiding our incubated NGOs to success",
		"bg-white", "grid md:grid-cols-2 gap-8",
	},
	views.SectionPodcasts: {
		"Our Podcasts",
		"Listen to inspiring conversations with social entrepreneurs and change-makers",
		"bg-gradient-to-br from-gray-50 to-emerald-50", "grid md:grid-cols-2 lg:grid-cols-3 gap-8",
	},
	views.SectionEvents: {
		"Events",
		"Join us at our workshops, networking events, and seminars designed to foster collaboration and growth",
		"bg-white", "grid md:grid-cols-2 gap-8",
	},
}

// sectionShell wraps a list with its anchor, heading and subtitle.
func sectionShell(name views.SectionName, extra cmp.Node, list cmp.Node) cmp.Node {
	c := copyBySection[name]
	return g.Section(
		g.ID(string(name)), g.Class("py-20 "+c.bg),
		g.Div(
			g.Class("max-w-7xl mx-auto px-4"),
			g.Div(
				g.Class("text-center mb-16"),
				g.H2(g.Class("text-4xl md:text-5xl font-bold text-gray-900 mb-4"), cmp.Text(c.heading)),
				g.P(g.Class("text-xl text-gray-600 max-w-2xl mx-auto"), cmp.Text(c.subtitle)),
			),
			extra,
			list,
		),
	)
}

func listID(name views.SectionName) string {
	return string(name) + "-list"
}

// skeletons renders the loading placeholders. In progressive mode the
// container carries the fragment URL the page script swaps in, and the
// message it shows if that fetch fails.
func skeletons(name views.SectionName, progressive bool, src, emptyMessage string) cmp.Node {
	c := copyBySection[name]
	cards := make([]cmp.Node, name.SkeletonCount())
	for i := range cards {
		cards[i] = g.Div(g.Class("skeleton animate-pulse bg-gray-100 rounded-xl h-64"))
	}
	return g.Div(
		g.ID(listID(name)), g.Class(c.grid),
		cmp.Attr("aria-busy", "true"),
		cmp.Attr("data-state", string(views.StateLoading)),
		cmp.If(progressive, cmp.Attr("data-section-src", src)),
		cmp.If(progressive, cmp.Attr("data-empty-message", emptyMessage)),
		cmp.Group(cards),
	)
}

func emptyState(name views.SectionName, message string) cmp.Node {
	return g.Div(
		g.ID(listID(name)),
		cmp.Attr("data-state", string(views.StateEmpty)),
		g.Class("text-center py-12"),
		g.P(g.Class("empty-message text-gray-500 text-lg"), cmp.Text(message)),
	)
}

// eventsEmptyState is the events empty state. The inner node carries the
// events-empty class so the page script rewrites its message per filter.
func eventsEmptyState(filter views.EventFilter) cmp.Node {
	return g.Div(
		g.ID(listID(views.SectionEvents)),
		cmp.Attr("data-state", string(views.StateEmpty)),
		cmp.Attr("data-filter-current", string(filter)),
		g.Div(
			g.Class("events-empty text-center py-12"),
			g.P(g.Class("empty-message text-gray-500 text-lg"), cmp.Text(views.EventsEmptyMessage(filter))),
		),
	)
}

func readyGrid(name views.SectionName, cards cmp.Node) cmp.Node {
	return g.Div(
		g.ID(listID(name)), g.Class(copyBySection[name].grid),
		cmp.Attr("data-state", string(views.StateReady)),
		cards,
	)
}

// sectionList picks the loading, empty or ready rendering of a section.
func sectionList[T any](sec views.Section[T], progressive bool, card func(T) cmp.Node) cmp.Node {
	switch sec.State() {
	case views.StateLoading:
		return skeletons(sec.Name, progressive, "/sections/"+string(sec.Name), sec.Name.EmptyMessage())
	case views.StateEmpty:
		return emptyState(sec.Name, sec.Name.EmptyMessage())
	default:
		return readyGrid(sec.Name, cmp.Map(sec.Items, card))
	}
}

// OrganizationsList is the body of the NGOs section.
func OrganizationsList(sec views.Section[models.Organization], progressive bool) cmp.Node {
	return sectionList(sec, progressive, OrganizationCard)
}

// TeamList is the body of the team section.
func TeamList(sec views.Section[models.TeamMember], progressive bool) cmp.Node {
	return sectionList(sec, progressive, TeamCard)
}

// MentorsList is the body of the mentors section.
func MentorsList(sec views.Section[models.Mentor], progressive bool) cmp.Node {
	return sectionList(sec, progressive, MentorCard)
}

// PodcastsList is the body of the podcasts section.
func PodcastsList(sec views.Section[models.Podcast], progressive bool) cmp.Node {
	return sectionList(sec, progressive, PodcastCard)
}

// EventsList is the body of the events section. Every event is rendered so
// the page script can refilter without a round trip; the ones outside filter
// are hidden.
func EventsList(sec views.Section[models.Event], filter views.EventFilter, now time.Time, progressive bool) cmp.Node {
	if sec.State() == views.StateLoading {
		return skeletons(sec.Name, progressive, "/sections/events?filter="+string(filter), views.EventsEmptyMessage(filter))
	}
	if sec.State() == views.StateEmpty {
		return eventsEmptyState(filter)
	}
	visible := len(views.FilterEvents(sec.Items, filter))
	return g.Div(
		g.ID(listID(sec.Name)),
		cmp.Attr("data-state", string(views.StateReady)),
		cmp.Attr("data-filter-current", string(filter)),
		g.Div(
			g.Class(copyBySection[sec.Name].grid),
			cmp.Map(sec.Items, func(e models.Event) cmp.Node {
				shown := filter == views.FilterAll || e.Status == models.EventStatus(filter)
				return EventCard(e, now, !shown)
			}),
		),
		g.Div(
			g.Class("events-empty text-center py-12"),
			cmp.If(visible > 0, cmp.Attr("hidden")),
			g.P(g.Class("empty-message text-gray-500 text-lg"), cmp.Text(views.EventsEmptyMessage(filter))),
		),
	)
}

// EventFilterBar is the row of filter buttons. The links work without
// scripts; the page script intercepts them.
func EventFilterBar(current views.EventFilter) cmp.Node {
	return g.Div(
		g.Class("event-filters flex justify-center gap-4 mb-12"),
		cmp.Attr("role", "group"),
		cmp.Map(views.EventFilters, func(f views.EventFilter) cmp.Node {
			cls := "filter-btn px-6 py-2.5 rounded-lg font-medium bg-gray-100 text-gray-700"
			if f == current {
				cls = "filter-btn active px-6 py-2.5 rounded-lg font-medium bg-emerald-600 text-white"
			}
			return g.A(
				g.Href("/?events="+string(f)+"#events"),
				g.Class(cls),
				cmp.Attr("data-filter", string(f)),
				cmp.Attr("aria-pressed", strconv.FormatBool(f == current)),
				cmp.Text(f.Label()),
			)
		}),
	)
}

// OrganizationsSection is the full NGOs section.
func OrganizationsSection(sec views.Section[models.Organization], progressive bool) cmp.Node {
	return sectionShell(views.SectionNGOs, nil, OrganizationsList(sec, progressive))
}

// TeamSection is the full team section.
func TeamSection(sec views.Section[models.TeamMember], progressive bool) cmp.Node {
	return sectionShell(views.SectionTeam, nil, TeamList(sec, progressive))
}

// MentorsSection is the full mentors section.
func MentorsSection(sec views.Section[models.Mentor], progressive bool) cmp.Node {
	return sectionShell(views.SectionMentors, nil, MentorsList(sec, progressive))
}

// PodcastsSection is the full podcasts section.
func PodcastsSection(sec views.Section[models.Podcast], progressive bool) cmp.Node {
	return sectionShell(views.SectionPodcasts, nil, PodcastsList(sec, progressive))
}

// EventsSection is the full events section with its filter bar.
func EventsSection(sec views.Section[models.Event], filter views.EventFilter, now time.Time, progressive bool) cmp.Node {
	return sectionShell(views.SectionEvents, EventFilterBar(filter), EventsList(sec, filter, now, progressive))
}
