// Package views holds the presentation state of the site's sections: list
// loading states, the NGO detail overlay, the event filter and the application
// form. It knows nothing about HTTP or HTML.
package views

// State is what a list section currently shows
type State string

// List states
const (
	StateLoading State = "loading"
	StateEmpty   State = "empty"
	StateReady   State = "ready"
)

// SectionName identifies one data-backed section of the page. It doubles as
// the page anchor.
type SectionName string

// Data sections, in page order
const (
	SectionNGOs     SectionName = "ngos"
	SectionTeam     SectionName = "team"
	SectionMentors  SectionName = "mentors"
	SectionPodcasts SectionName = "podcasts"
	SectionEvents   SectionName = "events"
)

// AnchorApply is the anchor of the application form.
const AnchorApply = "apply"

// Sections lists the data sections in page order.
var Sections = []SectionName{SectionNGOs, SectionTeam, SectionMentors, SectionPodcasts, SectionEvents}

var skeletonCounts = map[SectionName]int{
	SectionNGOs:     3,
	SectionTeam:     3,
	SectionMentors:  2,
	SectionPodcasts: 3,
	SectionEvents:   2,
}

var emptyMessages = map[SectionName]string{
	SectionNGOs:     "No NGOs currently incubated. Check back soon!",
	SectionTeam:     "Team information coming soon!",
	SectionMentors:  "Mentor information coming soon!",
	SectionPodcasts: "Podcast episodes coming soon!",
	SectionEvents:   "No events found.",
}

// ParseSectionName reports whether s names a data section.
func ParseSectionName(s string) (SectionName, bool) {
	name := SectionName(s)
	_, ok := skeletonCounts[name]
	return name, ok
}

// SkeletonCount is the number of placeholders shown while loading.
func (n SectionName) SkeletonCount() int {
	return skeletonCounts[n]
}

// EmptyMessage is shown when the section loaded no records. Events use
// EventsEmptyMessage instead since their message depends on the filter.
func (n SectionName) EmptyMessage() string {
	return emptyMessages[n]
}

// Anchor is the in-page link target of the section.
func (n SectionName) Anchor() string {
	return "#" + string(n)
}

// Section is one list plus its loading flag.
type Section[T any] struct {
	Name    SectionName
	Loading bool
	Items   []T
}

// NewSection returns a section in its initial loading state.
func NewSection[T any](name SectionName) Section[T] {
	return Section[T]{Name: name, Loading: true, Items: []T{}}
}

// State derives what the section shows from its loading flag and items.
func (s Section[T]) State() State {
	switch {
	case s.Loading:
		return StateLoading
	case len(s.Items) == 0:
		return StateEmpty
	default:
		return StateReady
	}
}
