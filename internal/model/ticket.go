package model

// firstTicketID is the ID issued to the first ticket of a run.  The
// counter is process-lifetime only; it restarts here on every launch.
const firstTicketID = 1000

// Ticket is a purchased booking.  Like shows, it snapshots its show
// by value at booking time and is immutable afterwards.  Tickets live
// in the booking customer's in-memory list for the rest of the run
// and are appended to the bookings log; they are never loaded back.
//
// Fields:
//  ID        – sequential ticket number issued by a TicketCounter.
//  Show      – snapshot of the show at booking time.
//  SeatCount – number of seats purchased (positive).
//  Price     – SeatCount multiplied by the per-seat price.
type Ticket struct {
	ID        int
	Show      Show
	SeatCount int
	Price     float64
}

// NewTicket builds a ticket for seatCount seats on the given show
// snapshot, priced at seatCount * pricePerSeat.
func NewTicket(id int, show Show, seatCount int, pricePerSeat float64) Ticket {
	return Ticket{
		ID:        id,
		Show:      show,
		SeatCount: seatCount,
		Price:     float64(seatCount) * pricePerSeat,
	}
}

// TicketCounter issues monotonically increasing ticket IDs starting
// at 1000.  It is owned by the session and passed to whoever books
// tickets; it is deliberately not a package-level global.
type TicketCounter struct {
	next int
}

// NewTicketCounter returns a counter whose first Next call yields 1000.
func NewTicketCounter() *TicketCounter {
	return &TicketCounter{next: firstTicketID}
}

// Next returns the next ticket ID and advances the counter.
func (c *TicketCounter) Next() int {
	id := c.next
	c.next++
	return id
}
