package concerts

import "fmt"

// Section is one pricing tier of a concert. A seat's presence in Seats is the
// availability signal; selling a seat removes it from the slice.
type Section struct {
	Price float64  `json:"price"`
	Seats []string `json:"seats"`
}

// Concert is one catalog entry. A concert has no stored ID; its position in
// the catalog array is its identity.
type Concert struct {
	Artist    string             `json:"artist"`
	Venue     string             `json:"venue"`
	City      string             `json:"city"`
	Genre     string             `json:"genre"`
	Timestamp int64              `json:"timestamp"`
	Tickets   map[string]Section `json:"tickets"`
}

// ListQuery carries the optional catalog filters. Artist matches as a
// case-sensitive substring; venue, city and genre match exactly; all filters
// compose as logical AND. Limit caps the result count after filtering.
type ListQuery struct {
	Artist string `form:"artist"`
	Venue  string `form:"venue"`
	City   string `form:"city"`
	Genre  string `form:"genre"`
	Limit  int    `form:"limit" binding:"omitempty,min=0"`
}

// OutOfRangeError reports a concert ID outside the catalog bounds.
type OutOfRangeError struct {
	Count int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("Concert ID needs to be between 0 and %d.", e.Count-1)
}
