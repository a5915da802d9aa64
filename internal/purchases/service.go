package purchases

import (
	"context"
	"sync"
	"time"

	"sonicseats/internal/concerts"
	"sonicseats/internal/shared/constants"
	"sonicseats/pkg/cache"
	"sonicseats/pkg/logger"
)

type Service interface {
	// SetCacheService injects the optional cache dependency so committed
	// purchases can invalidate the cached catalog
	SetCacheService(cacheService cache.Service)

	PurchaseTickets(ctx context.Context, concertID int, seats []string, paymentMethod string) (*Purchase, error)
}

type service struct {
	catalogRepo  concerts.Repository
	ledgerRepo   Repository
	cacheService cache.Service

	// commitMu makes the read-validate-write sequence exclusive. Every
	// purchase rewrites the whole catalog document regardless of which
	// concert it touches, so the lock granularity has to be the document,
	// not the concert.
	commitMu sync.Mutex
}

func NewService(catalogRepo concerts.Repository, ledgerRepo Repository) Service {
	return &service{
		catalogRepo: catalogRepo,
		ledgerRepo:  ledgerRepo,
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// PurchaseTickets runs the whole purchase: load catalog and ledger, remove the
// requested seats from the concert's inventory, append the ledger record, and
// write both documents back. Holding commitMu across the sequence means two
// requests racing for the same seat cannot both succeed against a stale
// snapshot. Nothing is persisted unless every seat validated.
func (s *service) PurchaseTickets(ctx context.Context, concertID int, seats []string, paymentMethod string) (*Purchase, error) {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	catalog, err := s.catalogRepo.LoadAll()
	if err != nil {
		return nil, err
	}
	ledger, err := s.ledgerRepo.LoadAll()
	if err != nil {
		return nil, err
	}

	if concertID < 0 || concertID >= len(catalog) {
		return nil, &concerts.OutOfRangeError{Count: len(catalog)}
	}

	updated, err := RemoveSeats(catalog[concertID].Tickets, seats)
	if err != nil {
		return nil, err
	}
	catalog[concertID].Tickets = updated

	purchase := Purchase{
		PurchaseID:    len(ledger),
		ConcertID:     concertID,
		Seats:         seats,
		PaymentMethod: paymentMethod,
		Timestamp:     time.Now().UnixMilli(),
	}
	ledger = append(ledger, purchase)

	if err := s.catalogRepo.SaveAll(catalog); err != nil {
		return nil, err
	}
	if err := s.ledgerRepo.SaveAll(ledger); err != nil {
		return nil, err
	}

	if s.cacheService != nil {
		// Best effort; a failed invalidation only shortens cache accuracy
		_ = s.cacheService.Delete(ctx, constants.CacheKeyConcertCatalog)
	}

	logger.GetDefault().LogPurchaseCompleted(ctx, purchase.PurchaseID, purchase.ConcertID, purchase.Seats, purchase.PaymentMethod)

	return &purchase, nil
}
