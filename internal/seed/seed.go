// Package seed fills an empty database with demo content.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/kartavya/website/internal/app/repositories"
)

// Store is the write surface the seeder needs; repositories.SeedRepository
// implements it.
type Store interface {
	Count(ctx context.Context, collection string) (int64, error)
	Insert(ctx context.Context, collection string, row map[string]interface{}) (string, error)
}

// Summary counts the rows inserted per collection.
type Summary map[string]int

// Total is the number of inserted rows across collections.
func (s Summary) Total() int {
	n := 0
	for _, v := range s {
		n += v
	}
	return n
}

type demoNGO struct {
	row     map[string]interface{}
	members []map[string]interface{}
}

// CreateDemoContent inserts demo rows into every content collection that is
// still empty. Collections that already hold rows are left alone. Errors are
// collected so one failing collection does not stop the others.
func CreateDemoContent(ctx context.Context, store Store, now time.Time, lgr zerolog.Logger) (Summary, error) {
	lgr = lgr.With().Str("component", "seed").Logger()
	lgr.Info().Msg("Checking/Creating demo content...")

	summary := Summary{}
	var finalErr error

	empty := func(collection string) bool {
		n, err := store.Count(ctx, collection)
		if err != nil {
			lgr.Error().Err(err).Str("collection", collection).Msg("Error counting rows")
			finalErr = errors.Join(finalErr, err)
			return false
		}
		if n > 0 {
			lgr.Info().Str("collection", collection).Int64("rows", n).Msg("Collection already populated, skipping")
		}
		return n == 0
	}

	insertAll := func(collection string, rows []map[string]interface{}) {
		for _, row := range rows {
			if _, err := store.Insert(ctx, collection, row); err != nil {
				lgr.Error().Err(err).Str("collection", collection).Msg("Error inserting demo row")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			summary[collection]++
		}
	}

	if empty(repositories.CollectionOrganizations) {
		for _, ngo := range demoNGOs(now) {
			id, err := store.Insert(ctx, repositories.CollectionOrganizations, ngo.row)
			if err != nil {
				lgr.Error().Err(err).Interface("name", ngo.row["name"]).Msg("Error inserting demo NGO")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			summary[repositories.CollectionOrganizations]++
			for _, m := range ngo.members {
				m["ngo_id"] = id
			}
			insertAll(repositories.CollectionMembers, ngo.members)
		}
	}
	if empty(repositories.CollectionTeam) {
		insertAll(repositories.CollectionTeam, demoTeam())
	}
	if empty(repositories.CollectionMentors) {
		insertAll(repositories.CollectionMentors, demoMentors())
	}
	if empty(repositories.CollectionPodcasts) {
		insertAll(repositories.CollectionPodcasts, demoPodcasts(now))
	}
	if empty(repositories.CollectionEvents) {
		insertAll(repositories.CollectionEvents, demoEvents(now))
	}

	lgr.Info().Int("inserted", summary.Total()).Msg("Demo content check/creation finished.")
	if finalErr != nil {
		return summary, fmt.Errorf("seeding finished with errors: %w", finalErr)
	}
	return summary, nil
}

func date(t time.Time) string {
	return t.Format("2006-01-02")
}

func demoNGOs(now time.Time) []demoNGO {
	return []demoNGO{
		{
			row: map[string]interface{}{
				"name":            "Shiksha Setu",
				"logo_url":        "https://images.kartavya.org/ngos/shiksha-setu.png",
				"description":     "Bridging the learning gap for first-generation school students across rural Maharashtra.",
				"website":         "https://shikshasetu.org",
				"founded_date":    date(now.AddDate(-6, 0, 0)),
				"incubation_date": date(now.AddDate(0, -4, 0)),
				"status":          "active",
			},
			members: []map[string]interface{}{
				{"name": "Meera Kulkarni", "role": "Founder", "bio": "Former teacher with twelve years in public schools."},
				{"name": "Arjun Patil", "role": "Program Lead"},
			},
		},
		{
			row: map[string]interface{}{
				"name":            "Jal Jeevan Collective",
				"logo_url":        "https://images.kartavya.org/ngos/jal-jeevan.png",
				"description":     "Community-run rainwater harvesting for drought-prone villages.",
				"incubation_date": date(now.AddDate(0, -9, 0)),
				"status":          "active",
			},
			members: []map[string]interface{}{
				{"name": "Farhan Shaikh", "role": "Co-founder", "photo_url": "https://images.kartavya.org/people/farhan.jpg"},
			},
		},
		{
			row: map[string]interface{}{
				"name":            "Aarogya Saathi",
				"logo_url":        "https://images.kartavya.org/ngos/aarogya-saathi.png",
				"description":     "Mobile health camps connecting remote districts with volunteer doctors.",
				"website":         "https://aarogyasaathi.in",
				"incubation_date": date(now.AddDate(-2, 0, 0)),
				"status":          "graduated",
			},
		},
	}
}

func demoTeam() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"name": "Priya Sharma", "role": "Program Director",
			"photo_url": "https://images.kartavya.org/team/priya.jpg",
			"bio":       "Leads the incubation cohorts and partner programs.",
			"email":     "priya@kartavya.org", "linkedin": "https://www.linkedin.com/in/priya-sharma",
			"display_order": 1,
		},
		{
			"name": "Rahul Mehta", "role": "Community Manager",
			"photo_url":     "https://images.kartavya.org/team/rahul.jpg",
			"display_order": 2,
		},
	}
}

func demoMentors() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"name": "Dr. Anita Desai", "photo_url": "https://images.kartavya.org/mentors/anita.jpg",
			"expertise": "Public Health Strategy",
			"bio":       "Two decades designing community health programs with state governments.",
			"email":     "anita.desai@example.org", "phone": "+91 98200 11111",
			"linkedin": "https://www.linkedin.com/in/anita-desai", "display_order": 1,
		},
		{
			"name": "Vikram Rao", "photo_url": "https://images.kartavya.org/mentors/vikram.jpg",
			"expertise": "Fundraising & Impact Measurement",
			"bio":       "Helps early-stage nonprofits build donor pipelines and outcome frameworks.",
			"email":     "vikram.rao@example.org", "display_order": 2,
		},
	}
}

func demoPodcasts(now time.Time) []map[string]interface{} {
	return []map[string]interface{}{
		{
			"title":           "Scaling Education Without Losing the Classroom",
			"description":     "Meera Kulkarni on growing Shiksha Setu from one village to forty.",
			"cover_image_url": "https://images.kartavya.org/podcasts/ep-12.jpg",
			"audio_url":       "https://media.kartavya.org/podcasts/ep-12.mp3",
			"published_date":  date(now.AddDate(0, 0, -10)),
			"duration":        "42:18",
		},
		{
			"title":           "Water, Data and Trust",
			"description":     "How the Jal Jeevan Collective measures impact with village volunteers.",
			"cover_image_url": "https://images.kartavya.org/podcasts/ep-11.jpg",
			"video_url":       "https://www.youtube.com/watch?v=kartavya11",
			"published_date":  date(now.AddDate(0, -1, 0)),
		},
	}
}

func demoEvents(now time.Time) []map[string]interface{} {
	return []map[string]interface{}{
		{
			"title":       "Impact Storytelling Workshop",
			"description": "A hands-on session on writing grant narratives that funders remember.",
			"event_date":  now.AddDate(0, 0, 14).Truncate(time.Hour),
			"location":    "KARTAVYA Hub, Mumbai",
			"status":      "upcoming",
		},
		{
			"title":       "Demo Day: Cohort 4",
			"description": "Our fourth cohort presents to funders and partners.",
			"event_date":  now.AddDate(0, -2, 0).Truncate(time.Hour),
			"location":    "Online",
			"image_url":   "https://images.kartavya.org/events/demo-day-4.jpg",
			"status":      "past",
		},
	}
}
