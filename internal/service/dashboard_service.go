package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/events"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/report"
	"github.com/Jefferson-MejiaTorres/Sigecul-sub000/internal/repository"
)

const statsCachePrefix = "sigecul:dashboard:stats:"

// DashboardService estadísticas agregadas del dashboard. Los totales se
// cachean en redis por supervisor y se invalidan cuando el bus publica
// cualquier cambio, para que las tarjetas del dashboard y las vistas de
// detalle converjan sin compartir estado mutable.
type DashboardService struct {
	repos  *repository.Repositories
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// DashboardStats métricas del panel principal
type DashboardStats struct {
	ProjectCounts   map[string]int64 `json:"project_counts"`
	ExpenseTotal    float64          `json:"expense_total"`
	ExpenseApproved float64          `json:"expense_approved"`
	ExpensePending  float64          `json:"expense_pending"`
	ExpenseCount    int64            `json:"expense_count"`
	PaymentTotal    float64          `json:"payment_total"`
	PaymentPaid     float64          `json:"payment_paid"`
	PaymentPending  float64          `json:"payment_pending"`
	PaymentCount    int64            `json:"payment_count"`
	ExpenseTotalCOP string           `json:"expense_total_cop"`
	PaymentTotalCOP string           `json:"payment_total_cop"`
	GeneratedAt     time.Time        `json:"generated_at"`
}

// NewDashboardService crea el servicio y deja corriendo el invalidador
// de cache suscrito al bus de cambios.
func NewDashboardService(repos *repository.Repositories, rdb *redis.Client, bus *events.Bus, ttl time.Duration, logger *zap.Logger) *DashboardService {
	s := &DashboardService{repos: repos, rdb: rdb, ttl: ttl, logger: logger}

	if rdb != nil && bus != nil {
		ch, _ := bus.Subscribe(64)
		go func() {
			for change := range ch {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				keys, err := rdb.Keys(ctx, statsCachePrefix+"*").Result()
				if err == nil && len(keys) > 0 {
					rdb.Del(ctx, keys...)
				}
				cancel()
				logger.Debug("Dashboard cache invalidated",
					zap.String("entity", change.Entity),
					zap.String("action", change.Action),
				)
			}
		}()
	}

	return s
}

// GetStats devuelve las estadísticas del supervisor, desde cache si hay
func (s *DashboardService) GetStats(ctx context.Context, supervisorID string) (*DashboardStats, error) {
	cacheKey := statsCachePrefix + supervisorID

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var stats DashboardStats
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.computeStats(ctx, supervisorID)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.rdb.Set(ctx, cacheKey, payload, s.ttl).Err(); err != nil {
				s.logger.Warn("Failed to cache dashboard stats", zap.Error(err))
			}
		}
	}

	return stats, nil
}

func (s *DashboardService) computeStats(ctx context.Context, supervisorID string) (*DashboardStats, error) {
	projectCounts, err := s.repos.Project.CountByStatus(ctx, supervisorID)
	if err != nil {
		return nil, err
	}
	expenseTotal, expenseApproved, expenseCount, err := s.repos.Expense.TotalsBySupervisor(ctx, supervisorID)
	if err != nil {
		return nil, err
	}
	paymentTotal, paymentPaid, paymentPending, paymentCount, err := s.repos.Payment.TotalsBySupervisor(ctx, supervisorID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		ProjectCounts:   projectCounts,
		ExpenseTotal:    expenseTotal,
		ExpenseApproved: expenseApproved,
		ExpensePending:  expenseTotal - expenseApproved,
		ExpenseCount:    expenseCount,
		PaymentTotal:    paymentTotal,
		PaymentPaid:     paymentPaid,
		PaymentPending:  paymentPending,
		PaymentCount:    paymentCount,
		ExpenseTotalCOP: report.FormatCOP(expenseTotal),
		PaymentTotalCOP: report.FormatCOP(paymentTotal),
		GeneratedAt:     time.Now(),
	}, nil
}
