package purchases

import (
	"regexp"

	"sonicseats/internal/concerts"
)

// A seat token is one section letter A-E followed by a one- or two-digit seat
// number. Whether that number actually exists in the section is an
// availability question, not a format one.
var seatPattern = regexp.MustCompile(`^[A-E]\d{1,2}$`)

// ValidateSeat checks one candidate seat against a concert's ticket
// inventory. It is side-effect-free: a nil return means the seat is valid and
// currently available, otherwise the returned *SeatError names the seat and
// whether it failed on format or availability.
func ValidateSeat(tickets map[string]concerts.Section, seat string) *SeatError {
	if !seatPattern.MatchString(seat) {
		return &SeatError{Seat: seat, Reason: SeatInvalidFormat}
	}

	section, ok := tickets[seat[:1]]
	if !ok {
		return &SeatError{Seat: seat, Reason: SeatUnavailable}
	}
	for _, available := range section.Seats {
		if available == seat {
			return nil
		}
	}
	return &SeatError{Seat: seat, Reason: SeatUnavailable}
}

// RemoveSeats removes the requested seats from a concert's inventory,
// all-or-nothing. Validation and removal run against a private copy of the
// inventory, so the caller's state is untouched on failure; the copy is only
// returned once every seat has validated. A seat requested twice in one batch
// fails on its second occurrence, because the first removal already claimed it.
func RemoveSeats(tickets map[string]concerts.Section, seats []string) (map[string]concerts.Section, error) {
	updated := make(map[string]concerts.Section, len(tickets))
	for code, section := range tickets {
		updated[code] = concerts.Section{
			Price: section.Price,
			Seats: append([]string(nil), section.Seats...),
		}
	}

	for _, seat := range seats {
		if seatErr := ValidateSeat(updated, seat); seatErr != nil {
			return nil, seatErr
		}

		code := seat[:1]
		section := updated[code]
		remaining := make([]string, 0, len(section.Seats)-1)
		for _, available := range section.Seats {
			if available != seat {
				remaining = append(remaining, available)
			}
		}
		section.Seats = remaining
		updated[code] = section
	}

	return updated, nil
}
