package application

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/oksasatya/invoice-dashboard/internal/domain/entity"
	repo "github.com/oksasatya/invoice-dashboard/internal/domain/repository"
	"github.com/oksasatya/invoice-dashboard/pkg/helpers"
)

const (
	DefaultLatestInvoices = 5

	cardsCacheKey = "dashboard:cards"
	cardsGenKey   = "dashboard:cards:gen"

	msgFetchCards   = "Failed to fetch card data."
	msgFetchRevenue = "Failed to fetch revenue data."
	msgFetchLatest  = "Failed to fetch the latest invoices."
)

var monthOrder = map[string]int{
	"Jan": 0, "Feb": 1, "Mar": 2, "Apr": 3, "May": 4, "Jun": 5,
	"Jul": 6, "Aug": 7, "Sep": 8, "Oct": 9, "Nov": 10, "Dec": 11,
}

type DashboardService struct {
	Invoices    repo.InvoiceRepository
	Customers   repo.CustomerRepository
	Revenue     repo.RevenueRepository
	Redis       *redis.Client
	CacheTTL    time.Duration
	LatestLimit int
	Logger      logrus.FieldLogger
}

func NewDashboardService(inv repo.InvoiceRepository, cust repo.CustomerRepository, rev repo.RevenueRepository, rdb *redis.Client, cacheTTL time.Duration, latestLimit int, logger logrus.FieldLogger) *DashboardService {
	if latestLimit <= 0 {
		latestLimit = DefaultLatestInvoices
	}
	return &DashboardService{
		Invoices:    inv,
		Customers:   cust,
		Revenue:     rev,
		Redis:       rdb,
		CacheTTL:    cacheTTL,
		LatestLimit: latestLimit,
		Logger:      logger,
	}
}

// CardData loads the four summary figures, from cache when possible.
// Cache entries are keyed by a generation that InvalidateCards bumps, so a read
// racing a mutation can only fill a generation nobody reads any more.
func (s *DashboardService) CardData(ctx context.Context) (entity.CardData, error) {
	var cards entity.CardData
	key, cached := s.cardsKey(ctx)
	if cached {
		ok, err := helpers.RedisGetJSON(ctx, s.Redis, key, &cards)
		if err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("card cache read failed")
		}
		if ok {
			return cards, nil
		}
	}

	cards = entity.CardData{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.Invoices.Count(gctx)
		cards.NumberOfInvoices = n
		return err
	})
	g.Go(func() error {
		n, err := s.Customers.Count(gctx)
		cards.NumberOfCustomers = n
		return err
	})
	g.Go(func() error {
		paid, pending, err := s.Invoices.SumByStatus(gctx)
		cards.TotalPaid, cards.TotalPending = paid, pending
		return err
	})
	if err := g.Wait(); err != nil {
		return entity.CardData{}, dataAccess(s.Logger, ErrDataAccess, msgFetchCards, err, logrus.Fields{"op": "CardData"})
	}

	if cached {
		if err := helpers.RedisSetJSON(ctx, s.Redis, key, cards, s.CacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("key", key).Warn("card cache write failed")
		}
	}
	return cards, nil
}

// InvalidateCards moves readers to a fresh cache generation.
func (s *DashboardService) InvalidateCards(ctx context.Context) {
	if !s.cacheEnabled() {
		return
	}
	if err := s.Redis.Incr(ctx, cardsGenKey).Err(); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("key", cardsGenKey).Warn("card cache invalidate failed")
	}
}

// cardsKey returns the key for the current generation; false disables caching for this call.
func (s *DashboardService) cardsKey(ctx context.Context) (string, bool) {
	if !s.cacheEnabled() {
		return "", false
	}
	gen, err := s.Redis.Get(ctx, cardsGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		gen, err = 0, nil
	}
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("key", cardsGenKey).Warn("card cache generation read failed")
		}
		return "", false
	}
	return cardsCacheKeyFor(gen), true
}

func cardsCacheKeyFor(gen int64) string {
	return cardsCacheKey + ":" + strconv.FormatInt(gen, 10)
}

// RevenueByMonth returns revenue rows in calendar order; unknown labels go last.
func (s *DashboardService) RevenueByMonth(ctx context.Context) ([]entity.Revenue, error) {
	rows, err := s.Revenue.List(ctx)
	if err != nil {
		return nil, dataAccess(s.Logger, ErrDataAccess, msgFetchRevenue, err, logrus.Fields{"op": "Revenue"})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return monthIndex(rows[i].Month) < monthIndex(rows[j].Month)
	})
	return rows, nil
}

func (s *DashboardService) LatestInvoices(ctx context.Context) ([]entity.LatestInvoice, error) {
	rows, err := s.Invoices.Latest(ctx, s.LatestLimit)
	if err != nil {
		return nil, dataAccess(s.Logger, ErrDataAccess, msgFetchLatest, err, logrus.Fields{"op": "LatestInvoices"})
	}
	return rows, nil
}

func (s *DashboardService) cacheEnabled() bool {
	return s.Redis != nil && s.CacheTTL > 0
}

func monthIndex(m string) int {
	if i, ok := monthOrder[m]; ok {
		return i
	}
	return len(monthOrder)
}
