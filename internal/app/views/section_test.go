package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSectionState(t *testing.T) {
	s := NewSection[int](SectionTeam)
	assert.Equal(t, StateLoading, s.State())
	assert.NotNil(t, s.Items)

	s.Loading = false
	assert.Equal(t, StateEmpty, s.State())

	s.Items = []int{1, 2}
	assert.Equal(t, StateReady, s.State())
}

func TestSkeletonCountsAndMessages(t *testing.T) {
	tests := []struct {
		name     SectionName
		skeleton int
		empty    string
	}{
		{SectionNGOs, 3, "No NGOs currently incubated. Check back soon!"},
		{SectionTeam, 3, "Team information coming soon!"},
		{SectionMentors, 2, "Mentor information coming soon!"},
		{SectionPodcasts, 3, "Podcast episodes coming soon!"},
		{SectionEvents, 2, "No events found."},
	}
	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			assert.Equal(t, tt.skeleton, tt.name.SkeletonCount())
			assert.Equal(t, tt.empty, tt.name.EmptyMessage())
			assert.Equal(t, "#"+string(tt.name), tt.name.Anchor())
		})
	}
}

func TestParseSectionName(t *testing.T) {
	name, ok := ParseSectionName("mentors")
	assert.True(t, ok)
	assert.Equal(t, SectionMentors, name)

	_, ok = ParseSectionName("apply")
	assert.False(t, ok)
}
