package service

import (
	"context"
	"math"

	"github.com/placecard/api/internal/model"
)

// ComputeEventStats derives every occupancy, RSVP, and check-in statistic
// from the given guest and table collections. It is pure: no hidden
// counters, no incremental state, so the output can never drift from the
// source records. Counts are per guest record; "people" figures sum
// normalized party sizes.
func ComputeEventStats(guests []*model.Guest, tables []*model.Table) *model.EventStats {
	stats := &model.EventStats{}

	coming := model.FilterByStatus(guests, model.RSVPStatusComing)
	declined := model.FilterByStatus(guests, model.RSVPStatusDeclined)

	stats.RSVP.Total = len(guests)
	stats.RSVP.Coming = len(coming)
	stats.RSVP.Declined = len(declined)
	// Unknown statuses count as pending rather than vanishing
	stats.RSVP.Pending = stats.RSVP.Total - stats.RSVP.Coming - stats.RSVP.Declined

	stats.RSVP.InvitedPeople = model.PartySizeSum(guests)
	stats.RSVP.ConfirmedPeople = model.PartySizeSum(coming)
	stats.RSVP.DeclinedPeople = model.PartySizeSum(declined)
	stats.RSVP.PendingPeople = stats.RSVP.InvitedPeople - stats.RSVP.ConfirmedPeople - stats.RSVP.DeclinedPeople

	for _, g := range guests {
		if g.IsAssigned() {
			stats.Seating.SeatedCount++
		}
	}
	stats.Seating.SeatedPercent = percentOf(stats.Seating.SeatedCount, stats.RSVP.Total)

	arrived := model.FilterByCheckedIn(guests, true)
	stats.CheckIn.CheckedInCount = len(arrived)
	stats.CheckIn.ArrivedPeople = model.PartySizeSum(arrived)
	for _, g := range arrived {
		if g.RSVPStatus == model.RSVPStatusComing {
			stats.CheckIn.CheckedInConfirmedCount++
		} else {
			stats.CheckIn.CheckedInNotConfirmedCount++
		}
		if g.IsAssigned() {
			stats.CheckIn.SeatedArrivedPeople += g.NormalizedPartySize()
		}
	}

	stats.CheckIn.NotConfirmedTotal = stats.RSVP.Pending + stats.RSVP.Declined
	stats.CheckIn.ArrivedNotSeatedPeople = maxInt(0, stats.CheckIn.ArrivedPeople-stats.CheckIn.SeatedArrivedPeople)

	// Capacity in play: regular tables always count; a reserve table counts
	// only once opened (someone assigned to it).
	stats.Seating.TotalCapacity = model.TotalCapacity(tables)
	for _, t := range tables {
		assigned := model.PartySizeSum(model.FilterByTable(guests, t.ID))
		if t.IsReserve() {
			stats.Tables.TotalReserve++
			if assigned > 0 {
				stats.Tables.OpenedReserve++
				stats.Seating.CapacityInPlay += t.Capacity
			}
		} else {
			stats.Tables.TotalRegular++
			if assigned >= t.Capacity {
				stats.Tables.FullRegular++
			}
			stats.Seating.CapacityInPlay += t.Capacity
		}
	}
	stats.Tables.NotFullRegular = stats.Tables.TotalRegular - stats.Tables.FullRegular

	// Free seats are measured against arrived, seated people: a seat held by
	// a no-show is physically free.
	stats.Seating.FreeSeats = maxInt(0, stats.Seating.CapacityInPlay-stats.CheckIn.SeatedArrivedPeople)

	return stats
}

// StatsService recomputes event statistics from the current collections
type StatsService struct {
	guests GuestRepositoryInterface
	tables TableRepositoryInterface
}

// NewStatsService creates a new stats service
func NewStatsService(guests GuestRepositoryInterface, tables TableRepositoryInterface) *StatsService {
	return &StatsService{
		guests: guests,
		tables: tables,
	}
}

// EventStats loads the event's guests and tables and derives the statistics
func (s *StatsService) EventStats(ctx context.Context, eventID string) (*model.EventStats, error) {
	if eventID == "" {
		return nil, ErrEventIDRequired
	}

	guests, err := s.guests.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	tables, err := s.tables.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	return ComputeEventStats(guests, tables), nil
}

// percentOf returns part/whole as a rounded percentage clamped to [0, 100],
// and 0 when the whole is empty.
func percentOf(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	p := int(math.Round(float64(part) / float64(whole) * 100))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
