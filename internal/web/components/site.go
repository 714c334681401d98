// Package components renders the site's HTML with gomponents.
package components

import (
	"net/url"
	"time"

	"github.com/dustin/go-humanize"
)

// SiteInfo is the static identity shown in the header, footer and meta tags.
type SiteInfo struct {
	Name         string
	Tagline      string
	Domain       string
	BaseURL      string
	ContactEmail string
	ContactPhone string
	Location     string
	Year         int
}

// PreviewImageURL is the social card for the home page.
func (s SiteInfo) PreviewImageURL() string {
	q := url.Values{}
	q.Set("title", s.Name+" NGO Incubator")
	q.Set("description", "Building tomorrow's social change leaders")
	return s.BaseURL + "/og-image?" + q.Encode()
}

func shortDate(t time.Time) string {
	return t.Format("1/2/2006")
}

func longDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

func clockTime(t time.Time) string {
	return t.Format("03:04 PM")
}

func relativeTime(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
