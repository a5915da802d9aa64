package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"sonicseats/internal/comments"
	"sonicseats/internal/concerts"
	"sonicseats/internal/faq"
	"sonicseats/internal/purchases"
	"sonicseats/internal/shared/config"
	"sonicseats/internal/shared/storage"
)

type Seeder struct {
	cfg *config.Config
}

func main() {
	fmt.Println("🌱 Starting Sonic Seats Data Seeder...")

	// Load configuration
	cfg := config.Load()

	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	seeder := &Seeder{cfg: cfg}

	fmt.Println("\n🌱 Seeding data files...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed data files: %v", err)
	}

	fmt.Println("\n✅ Seeding complete")
	fmt.Printf("   %s\n", cfg.Data.ConcertsFile)
	fmt.Printf("   %s\n", cfg.Data.FAQFile)
	fmt.Printf("   %s\n", cfg.Data.CommentsFile)
	fmt.Printf("   %s\n", cfg.Data.PurchasesFile)
}

// SeedAll rewrites all four data files, replacing whatever was there.
func (s *Seeder) SeedAll() error {
	if err := storage.New(s.cfg.Data.ConcertsFile).Write(seedConcerts()); err != nil {
		return fmt.Errorf("seed concerts: %w", err)
	}
	fmt.Printf("   ✅ %d concerts\n", len(seedConcerts()))

	if err := storage.New(s.cfg.Data.FAQFile).Write(seedFAQ()); err != nil {
		return fmt.Errorf("seed faq: %w", err)
	}
	fmt.Printf("   ✅ %d FAQ entries\n", len(seedFAQ()))

	if err := storage.New(s.cfg.Data.CommentsFile).Write([]comments.Comment{}); err != nil {
		return fmt.Errorf("seed comments: %w", err)
	}
	fmt.Println("   ✅ empty comments document")

	if err := storage.New(s.cfg.Data.PurchasesFile).Write([]purchases.Purchase{}); err != nil {
		return fmt.Errorf("seed purchases: %w", err)
	}
	fmt.Println("   ✅ empty purchase ledger")

	return nil
}

// sectionSeats builds the seat list for one section, e.g. B1..B14.
func sectionSeats(code string, count int) []string {
	seats := make([]string, 0, count)
	for i := 1; i <= count; i++ {
		seats = append(seats, fmt.Sprintf("%s%d", code, i))
	}
	return seats
}

// standardTickets builds the five-section inventory every seeded concert
// starts with: A is closest to the stage and priciest, E is the lawn.
func standardTickets(prices [5]float64, seatsPerSection int) map[string]concerts.Section {
	tickets := make(map[string]concerts.Section, 5)
	for i, code := range []string{"A", "B", "C", "D", "E"} {
		tickets[code] = concerts.Section{
			Price: prices[i],
			Seats: sectionSeats(code, seatsPerSection),
		}
	}
	return tickets
}

func seedConcerts() []concerts.Concert {
	base := time.Now().AddDate(0, 1, 0)
	at := func(days int, hour int) int64 {
		d := base.AddDate(0, 0, days)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.Local).UnixMilli()
	}

	return []concerts.Concert{
		{
			Artist:    "The Midnight Revival",
			Venue:     "The Anthem",
			City:      "Washington",
			Genre:     "Rock",
			Timestamp: at(0, 20),
			Tickets:   standardTickets([5]float64{150, 120, 90, 60, 35}, 12),
		},
		{
			Artist:    "Luna Vega",
			Venue:     "9:30 Club",
			City:      "Washington",
			Genre:     "Pop",
			Timestamp: at(4, 19),
			Tickets:   standardTickets([5]float64{95, 80, 65, 45, 25}, 10),
		},
		{
			Artist:    "Blue Ridge Strings",
			Venue:     "Wolf Trap",
			City:      "Vienna",
			Genre:     "Folk",
			Timestamp: at(9, 18),
			Tickets:   standardTickets([5]float64{85, 70, 55, 40, 20}, 14),
		},
		{
			Artist:    "DJ Cassiopeia",
			Venue:     "Echostage",
			City:      "Washington",
			Genre:     "Electronic",
			Timestamp: at(12, 22),
			Tickets:   standardTickets([5]float64{110, 90, 70, 50, 30}, 10),
		},
		{
			Artist:    "The Chesapeake Horns",
			Venue:     "The Fillmore",
			City:      "Silver Spring",
			Genre:     "Jazz",
			Timestamp: at(17, 20),
			Tickets:   standardTickets([5]float64{75, 60, 50, 35, 20}, 12),
		},
		{
			Artist:    "Luna Vega & The Satellites",
			Venue:     "Merriweather Post Pavilion",
			City:      "Columbia",
			Genre:     "Pop",
			Timestamp: at(23, 19),
			Tickets:   standardTickets([5]float64{130, 105, 80, 55, 30}, 14),
		},
	}
}

func seedFAQ() []faq.FAQ {
	return []faq.FAQ{
		{
			Question: "How do I purchase tickets?",
			Answer:   "Browse the concert listings, add seats to your cart, and check out with cash or credit card at the venue box office.",
		},
		{
			Question: "Can I get a refund?",
			Answer:   "All sales are final. If a concert is cancelled, refunds are issued automatically to the original payment method.",
		},
		{
			Question: "What do the seat sections mean?",
			Answer:   "Section A is closest to the stage and section E is furthest. Every seat in a section costs the same.",
		},
		{
			Question: "Is there an age restriction?",
			Answer:   "Most shows are all ages. Venue-specific restrictions are listed on the concert's detail page.",
		},
		{
			Question: "How early should I arrive?",
			Answer:   "Doors typically open one hour before showtime. Arrive early for general admission sections.",
		},
	}
}
