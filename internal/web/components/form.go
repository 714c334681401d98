package components

import (
	"strconv"
	"time"

	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"

	"github.com/kartavya/website/internal/app/models"
	"github.com/kartavya/website/internal/app/views"
)

type formField struct {
	name        string
	label       string
	inputType   string
	placeholder string
	required    bool
	help        string
}

var applicationFields = []formField{
	{"ngo_name", "NGO Name *", "text", "Enter NGO name", true, ""},
	{"contact_person", "Contact Person *", "text", "Full name", true, ""},
	{"email", "Email Address *", "email", "your@email.com", true, ""},
	{"phone", "Phone Number *", "tel", "+1 (555) 000-0000", true, ""},
	{"website", "Website (Optional)", "url", "https://your-ngo.org", false, ""},
	{"description", "NGO Description *", "textarea", "Tell us about your NGO, its mission, and the impact you're creating...", true, ""},
	{"pitch_deck_url", "Pitch Deck URL *", "url", "https://drive.google.com/... or https://dropbox.com/...", true,
		"Please provide a link to your pitch deck (Google Drive, Dropbox, etc.)"},
}

// ApplySection is the application form or, after a successful submission,
// the success panel. The panel is swapped back for an empty form after
// revertAfter.
func ApplySection(f views.FormSnapshot, revertAfter time.Duration) cmp.Node {
	return g.Section(
		g.ID(views.AnchorApply), g.Class("py-20 bg-gradient-to-br from-emerald-600 to-teal-700"),
		g.Div(
			g.Class("max-w-4xl mx-auto px-4"),
			g.Div(
				g.Class("text-center mb-12"),
				g.H2(g.Class("text-4xl md:text-5xl font-bold text-white mb-4"), cmp.Text("Join KARTAVYA")),
				g.P(g.Class("text-xl text-emerald-50"), cmp.Text("Apply to be part of our incubator program and accelerate your NGO's impact")),
			),
			g.Div(
				g.Class("bg-white rounded-2xl shadow-2xl p-8 md:p-12"),
				cmp.If(f.State == views.FormSuccess, SuccessPanel(revertAfter)),
				ApplicationForm(f, f.State == views.FormSuccess),
			),
		),
	)
}

// SuccessPanel replaces the form after a submission was accepted.
func SuccessPanel(revertAfter time.Duration) cmp.Node {
	return g.Div(
		g.Class("success-panel text-center py-12"),
		cmp.Attr("role", "status"),
		cmp.Attr("data-revert-after", strconv.FormatInt(revertAfter.Milliseconds(), 10)),
		g.H3(g.Class("text-2xl font-bold text-gray-900 mb-2"), cmp.Text("Application Submitted!")),
		g.P(g.Class("text-gray-600 mb-6"), cmp.Text("Thank you for your interest. We'll review your application and get back to you soon.")),
		g.A(g.Href("/#apply"), g.Class("text-emerald-600 font-semibold"), cmp.Attr("data-dismiss", ""), cmp.Text("Submit Another Application")),
	)
}

// ApplicationForm is the seven-field form. hidden keeps it in the page
// behind the success panel.
func ApplicationForm(f views.FormSnapshot, hidden bool) cmp.Node {
	values := f.Values
	submitting := f.State == views.FormSubmitting
	if hidden {
		values = models.Application{}
	}
	label := "Submit Application"
	if submitting {
		label = "Submitting..."
	}
	return g.Form(
		g.ID("application-form"), g.Method("post"), g.Action("/apply#apply"),
		g.Class("space-y-6"),
		cmp.If(hidden, cmp.Attr("hidden")),
		cmp.If(f.Error != "" && !hidden, g.Div(
			g.Class("form-error bg-red-50 border border-red-200 text-red-700 px-4 py-3 rounded-lg"),
			cmp.Attr("role", "alert"),
			cmp.Text(f.Error),
		)),
		g.Input(g.Type("hidden"), g.Name("client_token"), g.Value(f.ClientToken)),
		g.Div(
			g.Class("grid md:grid-cols-2 gap-6"),
			cmp.Map(applicationFields[:5], func(ff formField) cmp.Node {
				return fieldRow(ff, values.Get(ff.name), fieldError(f, ff.name, hidden))
			}),
		),
		cmp.Map(applicationFields[5:], func(ff formField) cmp.Node {
			return fieldRow(ff, values.Get(ff.name), fieldError(f, ff.name, hidden))
		}),
		g.Button(
			g.Type("submit"),
			g.Class("w-full bg-gradient-to-r from-emerald-600 to-teal-600 text-white py-4 rounded-lg font-semibold text-lg"),
			cmp.If(submitting, g.Disabled()),
			cmp.Text(label),
		),
		g.P(g.Class("text-sm text-gray-500 text-center"),
			cmp.Text("* Required fields. We'll review your application within 5-7 business days.")),
	)
}

func fieldError(f views.FormSnapshot, name string, hidden bool) string {
	if hidden {
		return ""
	}
	return f.FieldErrors[name]
}

func fieldRow(ff formField, value, errMsg string) cmp.Node {
	id := "field-" + ff.name
	attrs := []cmp.Node{
		g.ID(id), g.Name(ff.name),
		g.Placeholder(ff.placeholder),
		g.Class("w-full px-4 py-3 border border-gray-300 rounded-lg"),
		cmp.If(ff.required, g.Required()),
		cmp.If(errMsg != "", cmp.Attr("aria-invalid", "true")),
	}
	var input cmp.Node
	if ff.inputType == "textarea" {
		input = g.Textarea(cmp.Group(attrs), cmp.Attr("rows", "5"), cmp.Text(value))
	} else {
		input = g.Input(cmp.Group(attrs), g.Type(ff.inputType), g.Value(value))
	}
	return g.Div(
		g.Label(g.For(id), g.Class("block text-sm font-semibold text-gray-700 mb-2"), cmp.Text(ff.label)),
		input,
		cmp.If(ff.help != "", g.P(g.Class("text-sm text-gray-500 mt-2"), cmp.Text(ff.help))),
		cmp.If(errMsg != "", g.P(g.Class("field-error text-sm text-red-600 mt-1"), cmp.Text(errMsg))),
	)
}
