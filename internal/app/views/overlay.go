package views

import (
	"context"
	"sync"

	"github.com/kartavya/website/internal/app/models"
	"github.com/rs/zerolog"
)

// MemberLoader reads the members of one organization.
type MemberLoader func(ctx context.Context, organizationID string) ([]models.OrganizationMember, error)

// OverlaySnapshot is an immutable copy of the overlay for rendering.
type OverlaySnapshot struct {
	Organization *models.Organization
	Members      []models.OrganizationMember
	Loading      bool
}

// IsOpen reports whether an organization is selected.
func (s OverlaySnapshot) IsOpen() bool {
	return s.Organization != nil
}

// DetailOverlay shows one selected organization and its members. Each Open
// starts a member fetch tagged with a generation; a fetch result is applied
// only while its generation is current, so a slow response for an earlier
// selection can never show up under a later one.
type DetailOverlay struct {
	load   MemberLoader
	logger zerolog.Logger

	mu         sync.Mutex
	generation uint64
	selected   *models.Organization
	members    []models.OrganizationMember
	loading    bool
	cancel     context.CancelFunc
	inflight   sync.WaitGroup
}

// NewDetailOverlay creates a closed overlay.
func NewDetailOverlay(load MemberLoader, logger zerolog.Logger) *DetailOverlay {
	return &DetailOverlay{
		load:   load,
		logger: logger.With().Str("component", "detail_overlay").Logger(),
	}
}

// Open selects org, clears the member list and starts fetching its members.
// It returns without waiting for the fetch.
func (o *DetailOverlay) Open(ctx context.Context, org models.Organization) {
	o.mu.Lock()
	if o.cancel != nil {
		o.cancel()
	}
	o.generation++
	gen := o.generation
	o.selected = &org
	o.members = []models.OrganizationMember{}
	o.loading = true
	fetchCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.inflight.Add(1)
	o.mu.Unlock()

	go o.fetch(fetchCtx, cancel, gen, org.ID)
}

// OpenSync is Open followed by waiting for the member fetch.
func (o *DetailOverlay) OpenSync(ctx context.Context, org models.Organization) OverlaySnapshot {
	o.Open(ctx, org)
	o.Wait()
	return o.Snapshot()
}

func (o *DetailOverlay) fetch(ctx context.Context, cancel context.CancelFunc, gen uint64, organizationID string) {
	defer o.inflight.Done()
	defer cancel()

	members, err := o.load(ctx, organizationID)

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation {
		o.logger.Debug().Str("ngo_id", organizationID).Uint64("generation", gen).Msg("Discarding member fetch for superseded selection")
		return
	}

	o.loading = false
	o.cancel = nil
	if err != nil {
		o.logger.Error().Err(err).Str("ngo_id", organizationID).Msg("Error fetching NGO members")
		return
	}
	if members == nil {
		members = []models.OrganizationMember{}
	}
	o.members = members
}

// Close clears the selection and the member list together. Any fetch still
// running is cancelled and its result dropped.
func (o *DetailOverlay) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
	o.generation++
	o.selected = nil
	o.members = nil
	o.loading = false
}

// Snapshot returns a copy of the current state.
func (o *DetailOverlay) Snapshot() OverlaySnapshot {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.selected == nil {
		return OverlaySnapshot{}
	}
	org := *o.selected
	members := make([]models.OrganizationMember, len(o.members))
	copy(members, o.members)
	return OverlaySnapshot{Organization: &org, Members: members, Loading: o.loading}
}

// Wait blocks until no member fetch is running.
func (o *DetailOverlay) Wait() {
	o.inflight.Wait()
}
