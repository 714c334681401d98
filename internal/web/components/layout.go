package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Page wraps body content in the document shell.
func Page(site SiteInfo, title string, body ...cmp.Node) cmp.Node {
	description := "Building tomorrow's social change leaders"
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(title)),
				g.Meta(g.Name("description"), g.Content(description)),
				cmp.El("meta", cmp.Attr("property", "og:title"), g.Content(title)),
				cmp.El("meta", cmp.Attr("property", "og:description"), g.Content(description)),
				cmp.El("meta", cmp.Attr("property", "og:image"), g.Content(site.PreviewImageURL())),
				g.Meta(g.Name("twitter:card"), g.Content("summary_large_image")),
			),
			g.Body(
				g.Class("bg-white text-gray-900"),
				cmp.Group(body),
				pageScript(),
			),
		),
	)
}

// brandMark is the square "K" logo.
func brandMark(size string) cmp.Node {
	return g.Div(
		g.Class("brand-mark w-"+size+" h-"+size+" bg-gradient-to-br from-emerald-500 to-teal-600 rounded-lg flex items-center justify-center"),
		g.Span(g.Class("text-white font-bold"), cmp.Text("K")),
	)
}

// navLinks are the anchor links shared by header and footer.
var navLinks = []struct{ label, anchor string }{
	{"Our NGOs", "#ngos"},
	{"Team", "#team"},
	{"Mentors", "#mentors"},
	{"Podcasts", "#podcasts"},
	{"Events", "#events"},
}

// Header is the sticky top bar.
func Header(site SiteInfo) cmp.Node {
	return g.Header(
		g.Class("fixed top-0 w-full bg-white/95 backdrop-blur-sm shadow-sm z-40"),
		g.Nav(
			g.Class("max-w-7xl mx-auto px-4 flex items-center justify-between h-20"),
			g.A(
				g.Href("#"), g.Class("flex items-center space-x-3"),
				brandMark("12"),
				g.Div(
					g.H1(g.Class("text-2xl font-bold text-gray-900"), cmp.Text(site.Name)),
					g.P(g.Class("text-xs text-gray-600"), cmp.Text(site.Tagline)),
				),
			),
			g.Div(
				g.Class("nav-links flex items-center space-x-8"),
				cmp.Map(navLinks, func(l struct{ label, anchor string }) cmp.Node {
					return g.A(g.Href(l.anchor), g.Class("text-gray-700 hover:text-emerald-600 font-medium"), cmp.Text(l.label))
				}),
				g.A(g.Href("#apply"), g.Class("btn-primary bg-emerald-600 text-white px-6 py-2.5 rounded-lg"), cmp.Text("Apply Now")),
			),
		),
	)
}

// Hero is the static introduction and mission blurb.
func Hero(site SiteInfo) cmp.Node {
	features := []struct{ title, text string }{
		{"Expert Mentorship", "Connect with industry leaders and experienced professionals"},
		{"Scale Your Impact", "Access resources and strategies to amplify your reach"},
		{"Collaborative Network", "Join a community of change-makers and innovators"},
	}
	return g.Section(
		g.Class("hero pt-32 pb-20 bg-gradient-to-br from-emerald-50 via-white to-teal-50"),
		g.Div(
			g.Class("max-w-7xl mx-auto px-4 text-center"),
			g.Span(g.Class("pill text-sm font-medium text-gray-700"), cmp.Text("Empowering NGOs to Create Impact")),
			g.H1(
				g.Class("text-5xl md:text-7xl font-bold text-gray-900 mb-6"),
				cmp.Text("Building Tomorrow's "),
				g.Span(g.Class("text-emerald-600"), cmp.Text("Social Change Leaders")),
			),
			g.P(
				g.Class("text-xl text-gray-600 max-w-3xl mx-auto mb-10"),
				cmp.Textf("%s is a premier NGO incubator dedicated to nurturing and scaling social impact organizations. "+
					"We provide mentorship, resources, and a collaborative ecosystem to help NGOs transform communities.", site.Name),
			),
			g.Div(
				g.Class("flex justify-center gap-4"),
				g.A(g.Href("#apply"), g.Class("btn-primary"), cmp.Text("Join Our Incubator")),
				g.A(g.Href("#ngos"), g.Class("btn-secondary"), cmp.Text("Explore Our NGOs")),
			),
			g.Div(
				g.Class("grid md:grid-cols-3 gap-8 mt-20"),
				cmp.Map(features, func(f struct{ title, text string }) cmp.Node {
					return g.Div(
						g.Class("feature-card bg-white p-6 rounded-xl shadow-sm"),
						g.H3(g.Class("font-bold text-gray-900 mb-2"), cmp.Text(f.title)),
						g.P(g.Class("text-gray-600 text-sm"), cmp.Text(f.text)),
					)
				}),
			),
		),
	)
}

// Footer carries the quick links, resources, contact details and copyright.
func Footer(site SiteInfo) cmp.Node {
	return g.Footer(
		g.Class("bg-gray-900 text-white py-12"),
		g.Div(
			g.Class("max-w-7xl mx-auto px-4 grid md:grid-cols-4 gap-8"),
			g.Div(
				g.Class("md:col-span-1"),
				g.Div(g.Class("flex items-center space-x-3 mb-4"), brandMark("10"),
					g.Div(
						g.H3(g.Class("text-xl font-bold"), cmp.Text(site.Name)),
						g.P(g.Class("text-xs text-gray-400"), cmp.Text(site.Tagline)),
					),
				),
				g.P(g.Class("text-gray-400 text-sm"), cmp.Text("Empowering NGOs to create lasting social impact through mentorship, resources, and collaboration.")),
			),
			footerColumn("Quick Links", navLinks[0], navLinks[1], navLinks[2], navLinks[4]),
			footerColumn("Resources", navLinks[3], struct{ label, anchor string }{"Apply Now", "#apply"}),
			g.Div(
				g.H4(g.Class("font-bold mb-4"), cmp.Text("Contact Us")),
				g.Ul(
					g.Class("space-y-2 text-sm text-gray-400"),
					g.Li(g.A(g.Href("mailto:"+site.ContactEmail), cmp.Text(site.ContactEmail))),
					g.Li(cmp.Text(site.ContactPhone)),
					g.Li(cmp.Text(site.Location)),
				),
			),
		),
		g.Div(
			g.Class("max-w-7xl mx-auto px-4 border-t border-gray-800 pt-8 mt-8 flex justify-between text-sm text-gray-400"),
			g.P(cmp.Textf("© %d %s. All rights reserved.", site.Year, site.Name)),
			g.P(cmp.Text("Made with ♥ for social impact")),
		),
	)
}

func footerColumn(title string, links ...struct{ label, anchor string }) cmp.Node {
	return g.Div(
		g.H4(g.Class("font-bold mb-4"), cmp.Text(title)),
		g.Ul(
			g.Class("space-y-2 text-sm"),
			cmp.Map(links, func(l struct{ label, anchor string }) cmp.Node {
				return g.Li(g.A(g.Href(l.anchor), g.Class("text-gray-400 hover:text-emerald-400"), cmp.Text(l.label)))
			}),
		),
	)
}
