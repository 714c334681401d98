package models

import "time"

// TeamMember is a member of the incubator's own team, based on the 'team_members' table
type TeamMember struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Role         string    `json:"role" db:"role"`
	PhotoURL     string    `json:"photo_url" db:"photo_url"`
	Bio          *string   `json:"bio,omitempty" db:"bio"`
	Email        *string   `json:"email,omitempty" db:"email"`
	LinkedIn     *string   `json:"linkedin,omitempty" db:"linkedin"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Mentor guides incubated NGOs, based on the 'mentors' table
type Mentor struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	PhotoURL     string    `json:"photo_url" db:"photo_url"`
	Expertise    string    `json:"expertise" db:"expertise"`
	Bio          string    `json:"bio" db:"bio"`
	Email        string    `json:"email" db:"email"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	LinkedIn     *string   `json:"linkedin,omitempty" db:"linkedin"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
