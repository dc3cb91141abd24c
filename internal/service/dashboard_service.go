package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/primehood/supplies-api/internal/cache"
	"github.com/primehood/supplies-api/internal/repository"
)

// DashboardService computes the admin dashboard aggregate.
type DashboardService struct {
	dash      *repository.DashboardRepository
	products  *repository.ProductRepository
	orders    *repository.OrderRepository
	customers *repository.CustomerRepository
	stats     *cache.StatsCache
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(
	dash *repository.DashboardRepository,
	products *repository.ProductRepository,
	orders *repository.OrderRepository,
	customers *repository.CustomerRepository,
	stats *cache.StatsCache,
) *DashboardService {
	return &DashboardService{
		dash:      dash,
		products:  products,
		orders:    orders,
		customers: customers,
		stats:     stats,
	}
}

// DayRevenue is one weekday bucket of the trailing revenue series.
type DayRevenue struct {
	Day    string `json:"day"`
	Amount int    `json:"amount"`
}

// Stats is the dashboard aggregate.
type Stats struct {
	TotalRevenue   int                      `json:"totalRevenue"`
	TotalOrders    int                      `json:"totalOrders"`
	TotalProducts  int                      `json:"totalProducts"`
	TotalCustomers int                      `json:"totalCustomers"`
	RevenueGrowth  float64                  `json:"revenueGrowth"`
	OrderGrowth    float64                  `json:"orderGrowth"`
	RecentSales    []DayRevenue             `json:"recentSales"`
	TopProducts    []repository.TopProduct  `json:"topProducts"`
	OrdersByStatus []repository.StatusCount `json:"ordersByStatus"`
}

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// weekWindowStart returns midnight six days before now, so [start, now]
// covers exactly seven calendar days and each weekday occurs once.
func weekWindowStart(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -6)
}

// bucketByWeekday folds order totals from the trailing seven calendar days
// into one bucket per weekday name. The window is day-aligned, so two orders
// on the same weekday a week apart can never land in the same bucket.
func bucketByWeekday(totals []repository.OrderTotal, now time.Time) []DayRevenue {
	cutoff := weekWindowStart(now)
	amounts := make(map[time.Weekday]int, 7)
	for _, t := range totals {
		if t.CreatedAt.Before(cutoff) || t.CreatedAt.After(now) {
			continue
		}
		amounts[t.CreatedAt.Weekday()] += t.Total
	}

	series := make([]DayRevenue, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		series = append(series, DayRevenue{Day: weekdayNames[wd], Amount: amounts[wd]})
	}
	return series
}

// GetStats computes the aggregate, serving from cache when fresh.
func (s *DashboardService) GetStats(ctx context.Context) (*Stats, error) {
	if s.stats != nil {
		var cached Stats
		hit, err := s.stats.Get(ctx, &cached)
		if err != nil {
			log.Warn().Err(err).Msg("stats cache read failed")
		} else if hit {
			return &cached, nil
		}
	}

	stats := &Stats{
		// Growth figures need a historical baseline the store does not keep
		// yet; the dashboard renders these fixed values meanwhile.
		RevenueGrowth: 12.5,
		OrderGrowth:   8.3,
	}

	var err error
	if stats.TotalRevenue, err = s.dash.TotalRevenue(); err != nil {
		return nil, err
	}
	if stats.TotalOrders, err = s.orders.Count(); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = s.products.Count(); err != nil {
		return nil, err
	}
	if stats.TotalCustomers, err = s.customers.Count(); err != nil {
		return nil, err
	}
	if stats.OrdersByStatus, err = s.dash.OrdersByStatus(); err != nil {
		return nil, err
	}
	if stats.TopProducts, err = s.dash.TopProducts(5); err != nil {
		return nil, err
	}

	now := time.Now()
	totals, err := s.dash.OrderTotalsSince(weekWindowStart(now))
	if err != nil {
		return nil, err
	}
	stats.RecentSales = bucketByWeekday(totals, now)

	if s.stats != nil {
		if err := s.stats.Set(ctx, stats); err != nil {
			log.Warn().Err(err).Msg("stats cache write failed")
		}
	}
	return stats, nil
}
