package models

// Application is a candidate NGO's request to join the program, based on the 'ngo_applications' table.
// It is write-only: the site never reads applications back.
type Application struct {
	NGOName       string `json:"ngo_name" form:"ngo_name" binding:"required,max=200"`
	ContactPerson string `json:"contact_person" form:"contact_person" binding:"required,max=200"`
	Email         string `json:"email" form:"email" binding:"required,email"`
	Phone         string `json:"phone" form:"phone" binding:"required,max=50"`
	Description   string `json:"description" form:"description" binding:"required,max=5000"`
	PitchDeckURL  string `json:"pitch_deck_url" form:"pitch_deck_url" binding:"required,url"`
	Website       string `json:"website" form:"website" binding:"omitempty,url"`
}

// ApplicationFields lists the form fields in display order.
var ApplicationFields = []string{
	"ngo_name",
	"contact_person",
	"email",
	"phone",
	"website",
	"description",
	"pitch_deck_url",
}

// Get returns the value of the named form field.
func (a Application) Get(field string) string {
	switch field {
	case "ngo_name":
		return a.NGOName
	case "contact_person":
		return a.ContactPerson
	case "email":
		return a.Email
	case "phone":
		return a.Phone
	case "description":
		return a.Description
	case "pitch_deck_url":
		return a.PitchDeckURL
	case "website":
		return a.Website
	}
	return ""
}

// Set assigns the named form field. Unknown names are ignored.
func (a *Application) Set(field, value string) {
	switch field {
	case "ngo_name":
		a.NGOName = value
	case "contact_person":
		a.ContactPerson = value
	case "email":
		a.Email = value
	case "phone":
		a.Phone = value
	case "description":
		a.Description = value
	case "pitch_deck_url":
		a.PitchDeckURL = value
	case "website":
		a.Website = value
	}
}
