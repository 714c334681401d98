package components

import (
	"time"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/app/views"
)

const overlayID = "ngo-overlay"

// OverlayHost is the container the page script fills with fetched overlays.
func OverlayHost(s views.OverlaySnapshot) cmp.Node {
	return g.Div(g.ID(overlayID), cmp.If(s.IsOpen(), Overlay(s)))
}

// Overlay renders the detail modal of the selected organization. It renders
// nothing when no organization is selected.
func Overlay(s views.OverlaySnapshot) cmp.Node {
	if !s.IsOpen() {
		return nil
	}
	o := s.Organization
	return g.Div(
		g.Class("overlay fixed inset-0 bg-black/50 flex items-center justify-center p-4 z-50"),
		cmp.Attr("data-overlay-for", o.ID),
		g.Div(
			g.Class("bg-white rounded-2xl max-w-4xl w-full max-h-[90vh] overflow-y-auto"),
			cmp.Attr("role", "dialog"),
			cmp.Attr("aria-modal", "true"),
			cmp.Attr("aria-label", o.Name),
			g.Div(
				g.Class("sticky top-0 bg-white border-b p-6 flex justify-between items-center"),
				g.H2(g.Class("text-3xl font-bold text-gray-900"), cmp.Text(o.Name)),
				g.A(g.Href("/#ngos"), g.Class("overlay-close p-2 rounded-full"), cmp.Attr("data-overlay-close", ""),
					cmp.Attr("aria-label", "Close"), cmp.Text("×")),
			),
			g.Div(
				g.Class("p-6 grid md:grid-cols-3 gap-6 mb-8"),
				g.Div(
					g.Class("md:col-span-1 bg-gradient-to-br from-emerald-100 to-teal-100 rounded-xl p-8 flex items-center justify-center"),
					g.Img(g.Src(o.LogoURL), g.Alt(o.Name), g.Class("max-w-full max-h-48 object-contain")),
				),
				g.Div(
					g.Class("md:col-span-2 space-y-4"),
					cmp.If(o.FoundedDate != nil, dateFact("Founded", o.FoundedDate)),
					dateFact("Incubated", &o.IncubationDate),
					cmp.If(deref(o.Website) != "", externalLink(deref(o.Website),
						g.Class("inline-flex items-center bg-emerald-600 text-white px-6 py-3 rounded-lg"),
						cmp.Text("Visit Website"),
					)),
				),
			),
			g.Div(
				g.Class("px-6 mb-8"),
				g.H3(g.Class("text-2xl font-bold text-gray-900 mb-4"), cmp.Text("About")),
				g.P(g.Class("text-gray-700 leading-relaxed"), cmp.Text(o.Description)),
			),
			membersBlock(s),
		),
	)
}

func dateFact(label string, t *time.Time) cmp.Node {
	return g.Div(
		g.Class("text-gray-700"),
		g.Span(g.Class("font-medium"), cmp.Text(label+": ")),
		cmp.Text(shortDate(*t)),
	)
}

// membersBlock is omitted entirely when there are no members to show.
func membersBlock(s views.OverlaySnapshot) cmp.Node {
	if s.Loading {
		return g.Div(g.Class("px-6 pb-6 members-loading"), cmp.Attr("aria-busy", "true"))
	}
	if len(s.Members) == 0 {
		return nil
	}
	return g.Div(
		g.Class("px-6 pb-6"),
		g.H3(g.Class("text-2xl font-bold text-gray-900 mb-6"), cmp.Text("Team Members")),
		g.Div(
			g.Class("grid md:grid-cols-2 gap-6"),
			cmp.Map(s.Members, memberCard),
		),
	)
}

func memberCard(m models.OrganizationMember) cmp.Node {
	var avatar cmp.Node
	if photo := deref(m.PhotoURL); photo != "" {
		avatar = g.Img(g.Src(photo), g.Alt(m.Name), g.Class("w-16 h-16 rounded-full object-cover"))
	} else {
		avatar = g.Div(
			g.Class("avatar-initial w-16 h-16 rounded-full bg-gradient-to-br from-emerald-400 to-teal-500 flex items-center justify-center text-white text-xl font-bold"),
			cmp.Text(m.Initial()),
		)
	}
	return g.Div(
		g.Class("member-card bg-gray-50 rounded-xl p-4 flex gap-4"),
		avatar,
		g.Div(
			g.Class("flex-1"),
			g.H4(g.Class("font-bold text-gray-900"), cmp.Text(m.Name)),
			g.P(g.Class("text-emerald-600 text-sm mb-2"), cmp.Text(m.Role)),
			cmp.If(deref(m.Bio) != "", g.P(g.Class("text-gray-600 text-sm"), cmp.Text(deref(m.Bio)))),
		),
	)
}
