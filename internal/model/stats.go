package model

// EventStats is the full set of derived occupancy/RSVP/check-in statistics
// for one event. Every quantity is recomputed from the current guest and
// table collections on demand; nothing here is ever persisted.
type EventStats struct {
	RSVP    RSVPStats    `json:"rsvp"`
	Seating SeatingStats `json:"seating"`
	CheckIn CheckInStats `json:"check_in"`
	Tables  TableStats   `json:"tables"`
}

// RSVPStats counts guest records per status and sums the people they stand
// for. ConfirmedPeople + PendingPeople + DeclinedPeople == InvitedPeople.
type RSVPStats struct {
	Coming   int `json:"coming"`
	Pending  int `json:"pending"`
	Declined int `json:"declined"`
	Total    int `json:"total"`

	InvitedPeople   int `json:"invited_people"`
	ConfirmedPeople int `json:"confirmed_people"`
	PendingPeople   int `json:"pending_people"`
	DeclinedPeople  int `json:"declined_people"`
}

// SeatingStats covers table assignment and free capacity. FreeSeats is
// measured against arrived, seated people: a seat held by a no-show is
// physically free. CapacityInPlay counts regular tables plus opened reserve
// tables only; TotalCapacity is the theoretical all-tables bound.
type SeatingStats struct {
	SeatedCount    int `json:"seated_count"`
	SeatedPercent  int `json:"seated_percent"`
	TotalCapacity  int `json:"total_capacity"`
	CapacityInPlay int `json:"capacity_in_play"`
	FreeSeats      int `json:"free_seats"`
}

// CheckInStats covers event-day arrival tracking.
type CheckInStats struct {
	CheckedInCount             int `json:"checked_in_count"`
	CheckedInConfirmedCount    int `json:"checked_in_confirmed_count"`
	CheckedInNotConfirmedCount int `json:"checked_in_not_confirmed_count"`
	NotConfirmedTotal          int `json:"not_confirmed_total"`

	ArrivedPeople          int `json:"arrived_people"`
	SeatedArrivedPeople    int `json:"seated_arrived_people"`
	ArrivedNotSeatedPeople int `json:"arrived_not_seated_people"`
}

// TableStats partitions tables into regular and reserve and reports
// fullness. FullRegular + NotFullRegular == TotalRegular. A reserve table is
// opened once any guest is assigned to it.
type TableStats struct {
	TotalRegular   int `json:"total_regular"`
	FullRegular    int `json:"full_regular"`
	NotFullRegular int `json:"not_full_regular"`
	TotalReserve   int `json:"total_reserve"`
	OpenedReserve  int `json:"opened_reserve"`
}

// TableOccupancy reports one table's live occupancy alongside its capacity.
// Occupancy above capacity is a detected state, not an error: a capacity
// edit can shrink a table under its existing assignments.
type TableOccupancy struct {
	TableID        string `json:"table_id"`
	Capacity       int    `json:"capacity"`
	AssignedPeople int    `json:"assigned_people"`
	Full           bool   `json:"full"`
}
