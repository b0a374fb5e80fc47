package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placecard/api/internal/model"
)

func TestComputeEventStats_EmptyEvent(t *testing.T) {
	t.Parallel()

	stats := ComputeEventStats(nil, nil)

	assert.Equal(t, 0, stats.RSVP.Total)
	assert.Equal(t, 0, stats.Seating.SeatedPercent, "empty roster must not divide by zero")
	assert.Equal(t, 0, stats.Seating.FreeSeats)
	assert.Equal(t, 0, stats.Tables.TotalRegular)
}

func TestComputeEventStats_RSVPBreakdown(t *testing.T) {
	t.Parallel()

	guests := []*model.Guest{
		{ID: "g1", PartySize: 2, RSVPStatus: model.RSVPStatusComing},
		{ID: "g2", PartySize: 3, RSVPStatus: model.RSVPStatusComing},
		{ID: "g3", PartySize: 1, RSVPStatus: model.RSVPStatusPending},
		{ID: "g4", PartySize: 4, RSVPStatus: model.RSVPStatusDeclined},
	}

	stats := ComputeEventStats(guests, nil)

	assert.Equal(t, 4, stats.RSVP.Total)
	assert.Equal(t, 2, stats.RSVP.Coming)
	assert.Equal(t, 1, stats.RSVP.Pending)
	assert.Equal(t, 1, stats.RSVP.Declined)
	assert.Equal(t, 10, stats.RSVP.InvitedPeople)
	assert.Equal(t, 5, stats.RSVP.ConfirmedPeople)
	assert.Equal(t, 1, stats.RSVP.PendingPeople)
	assert.Equal(t, 4, stats.RSVP.DeclinedPeople)
	assert.Equal(t, 2, stats.CheckIn.NotConfirmedTotal, "pending + declined")
}

func TestComputeEventStats_UnknownStatusCountsAsPending(t *testing.T) {
	t.Parallel()

	guests := []*model.Guest{
		{ID: "g1", PartySize: 2, RSVPStatus: model.RSVPStatus("maybe")},
		{ID: "g2", PartySize: 1, RSVPStatus: ""},
	}

	stats := ComputeEventStats(guests, nil)

	assert.Equal(t, 2, stats.RSVP.Total)
	assert.Equal(t, 2, stats.RSVP.Pending)
	assert.Equal(t, 3, stats.RSVP.PendingPeople)
}

func TestComputeEventStats_PartySizeNormalization(t *testing.T) {
	t.Parallel()

	tableID := "t1"
	guests := []*model.Guest{
		{ID: "g1", PartySize: 0, TableID: &tableID},
		{ID: "g2", PartySize: -2, TableID: &tableID},
	}
	tables := []*model.Table{
		{ID: "t1", Capacity: 4, Shape: model.TableShapeSquare},
	}

	stats := ComputeEventStats(guests, tables)

	assert.Equal(t, 2, stats.RSVP.InvitedPeople, "malformed party sizes count as 1")
	assert.Equal(t, 0, stats.Tables.FullRegular, "2 of 4 seats is not full")
}

func TestComputeEventStats_SeatedPercentRounds(t *testing.T) {
	t.Parallel()

	tableID := "t1"
	// 1 seated of 3 -> 33.33 rounds to 33; 2 of 3 -> 66.67 rounds to 67.
	guests := []*model.Guest{
		{ID: "g1", PartySize: 1, TableID: &tableID},
		{ID: "g2", PartySize: 1},
		{ID: "g3", PartySize: 1},
	}
	tables := []*model.Table{{ID: "t1", Capacity: 10, Shape: model.TableShapeSquare}}

	stats := ComputeEventStats(guests, tables)
	assert.Equal(t, 33, stats.Seating.SeatedPercent)

	guests[1].TableID = &tableID
	stats = ComputeEventStats(guests, tables)
	assert.Equal(t, 67, stats.Seating.SeatedPercent)
}

func TestComputeEventStats_TableFullness(t *testing.T) {
	t.Parallel()

	full := "t-full"
	overfull := "t-over"
	guests := []*model.Guest{
		{ID: "g1", PartySize: 4, TableID: &full},
		{ID: "g2", PartySize: 5, TableID: &overfull},
	}
	tables := []*model.Table{
		{ID: "t-full", Capacity: 4, Shape: model.TableShapeSquare},
		{ID: "t-over", Capacity: 4, Shape: model.TableShapeRectangle},
		{ID: "t-empty", Capacity: 8, Shape: model.TableShapeSquare},
	}

	stats := ComputeEventStats(guests, tables)

	assert.Equal(t, 3, stats.Tables.TotalRegular)
	assert.Equal(t, 2, stats.Tables.FullRegular, "at or over capacity both count full")
	assert.Equal(t, 1, stats.Tables.NotFullRegular)
}

func TestComputeEventStats_ReserveOpensOnFirstAssignment(t *testing.T) {
	t.Parallel()

	reserveID := "t-reserve"
	tables := []*model.Table{
		{ID: "t-regular", Capacity: 8, Shape: model.TableShapeSquare},
		{ID: "t-reserve", Capacity: 6, Shape: model.TableShapeReserve},
	}

	// Closed reserve: only the regular table is in play.
	stats := ComputeEventStats(nil, tables)
	assert.Equal(t, 1, stats.Tables.TotalReserve)
	assert.Equal(t, 0, stats.Tables.OpenedReserve)
	assert.Equal(t, 8, stats.Seating.CapacityInPlay)
	assert.Equal(t, 14, stats.Seating.TotalCapacity, "total capacity counts reserve regardless")

	// One assignment opens it.
	guests := []*model.Guest{{ID: "g1", PartySize: 1, TableID: &reserveID}}
	stats = ComputeEventStats(guests, tables)
	assert.Equal(t, 1, stats.Tables.OpenedReserve)
	assert.Equal(t, 14, stats.Seating.CapacityInPlay)
}

func TestComputeEventStats_CheckInBreakdown(t *testing.T) {
	t.Parallel()

	tableID := "t1"
	guests := []*model.Guest{
		{ID: "g1", PartySize: 2, RSVPStatus: model.RSVPStatusComing, CheckedIn: true, TableID: &tableID},
		{ID: "g2", PartySize: 3, RSVPStatus: model.RSVPStatusPending, CheckedIn: true},
		{ID: "g3", PartySize: 1, RSVPStatus: model.RSVPStatusComing},
	}
	tables := []*model.Table{{ID: "t1", Capacity: 10, Shape: model.TableShapeSquare}}

	stats := ComputeEventStats(guests, tables)

	assert.Equal(t, 2, stats.CheckIn.CheckedInCount)
	assert.Equal(t, 1, stats.CheckIn.CheckedInConfirmedCount)
	assert.Equal(t, 1, stats.CheckIn.CheckedInNotConfirmedCount)
	assert.Equal(t, 5, stats.CheckIn.ArrivedPeople)
	assert.Equal(t, 2, stats.CheckIn.SeatedArrivedPeople)
	assert.Equal(t, 3, stats.CheckIn.ArrivedNotSeatedPeople)
}

func TestComputeEventStats_FreeSeatsNeverNegative(t *testing.T) {
	t.Parallel()

	tableID := "t1"
	// A capacity reduction after seating leaves more arrived people than
	// seats in play; free seats clamp at zero rather than going negative.
	guests := []*model.Guest{
		{ID: "g1", PartySize: 6, RSVPStatus: model.RSVPStatusComing, CheckedIn: true, TableID: &tableID},
	}
	tables := []*model.Table{{ID: "t1", Capacity: 4, Shape: model.TableShapeSquare}}

	stats := ComputeEventStats(guests, tables)

	assert.Equal(t, 0, stats.Seating.FreeSeats)
}

func TestComputeEventStats_FreeSeatsMeasureArrivedSeated(t *testing.T) {
	t.Parallel()

	tableID := "t1"
	guests := []*model.Guest{
		// Seated but not arrived: their seats still count free.
		{ID: "g1", PartySize: 4, RSVPStatus: model.RSVPStatusComing, TableID: &tableID},
		// Seated and arrived: occupies seats.
		{ID: "g2", PartySize: 2, RSVPStatus: model.RSVPStatusComing, CheckedIn: true, TableID: &tableID},
	}
	tables := []*model.Table{{ID: "t1", Capacity: 10, Shape: model.TableShapeSquare}}

	stats := ComputeEventStats(guests, tables)

	assert.Equal(t, 8, stats.Seating.FreeSeats)
}

func TestStatsService_EventStats_LoadsCollections(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tableID := "t1"
	guestRepo := &mockGuestRepo{
		listByEventFunc: func(ctx context.Context, eventID string) ([]*model.Guest, error) {
			return []*model.Guest{
				{ID: "g1", PartySize: 2, RSVPStatus: model.RSVPStatusComing, TableID: &tableID},
			}, nil
		},
	}
	tableRepo := &mockTableRepo{
		listByEventFunc: func(ctx context.Context, eventID string) ([]*model.Table, error) {
			return []*model.Table{{ID: "t1", Capacity: 8, Shape: model.TableShapeSquare}}, nil
		},
	}

	svc := NewStatsService(guestRepo, tableRepo)

	stats, err := svc.EventStats(ctx, "event-1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Seating.SeatedCount)
	assert.Equal(t, 8, stats.Seating.CapacityInPlay)
}

func TestStatsService_EventStats_RequiresEventID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewStatsService(&mockGuestRepo{}, &mockTableRepo{})

	_, err := svc.EventStats(ctx, "")
	assert.ErrorIs(t, err, ErrEventIDRequired)
}
