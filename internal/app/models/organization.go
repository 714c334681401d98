package models

import "time"

// OrganizationStatusActive is the only status shown on the site.
const OrganizationStatusActive = "active"

// Organization is an incubated NGO, based on the 'ngos' table
type Organization struct {
	ID             string     `json:"id" db:"id"`
	Name           string     `json:"name" db:"name"`
	LogoURL        string     `json:"logo_url" db:"logo_url"`
	Description    string     `json:"description" db:"description"`
	Website        *string    `json:"website,omitempty" db:"website"`
	FoundedDate    *time.Time `json:"founded_date,omitempty" db:"founded_date"` // Nullable
	IncubationDate time.Time  `json:"incubation_date" db:"incubation_date"`
	Status         string     `json:"status" db:"status"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// OrganizationMember belongs to exactly one Organization, based on the 'ngo_members' table
type OrganizationMember struct {
	ID             string    `json:"id" db:"id"`
	OrganizationID string    `json:"ngo_id" db:"ngo_id"`
	Name           string    `json:"name" db:"name"`
	Role           string    `json:"role" db:"role"`
	PhotoURL       *string   `json:"photo_url,omitempty" db:"photo_url"`
	Bio            *string   `json:"bio,omitempty" db:"bio"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// Initial returns the first letter of the member's name, used when there is no photo.
func (m OrganizationMember) Initial() string {
	for _, r := range m.Name {
		return string(r)
	}
	return ""
}
