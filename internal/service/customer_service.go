package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Raymond9734/customer-directory-api/internal/cache"
	"github.com/Raymond9734/customer-directory-api/internal/models"
	"github.com/Raymond9734/customer-directory-api/internal/repository"
)

// CustomerService handles customer query logic
type CustomerService interface {
	// List validates the raw parameters, filters the dataset and returns
	// the requested page
	List(ctx context.Context, params models.CustomerQueryParams) (*CustomerListResult, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	cache        cache.Cache
	cacheTTL     time.Duration
	logger       *slog.Logger
}

// NewCustomerService creates a new customer service. A nil cache disables caching.
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	responseCache cache.Cache,
	cacheTTL time.Duration,
	logger *slog.Logger,
) CustomerService {
	if responseCache == nil {
		responseCache = cache.NewNoop()
	}

	return &customerService{
		customerRepo: customerRepo,
		cache:        responseCache,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// List retrieves a filtered, paginated page of customers
func (s *customerService) List(ctx context.Context, params models.CustomerQueryParams) (*CustomerListResult, error) {
	filter, err := models.ParseCustomerFilter(params)
	if err != nil {
		s.logger.Debug("rejected customer query",
			slog.String("page", params.Page),
			slog.String("limit", params.Limit),
			slog.String("size", params.Size),
			slog.String("industry", params.Industry),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	key := filter.Key()
	if result, ok := s.cached(ctx, key); ok {
		return result, nil
	}

	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	matched := make([]*models.Customer, 0, len(customers))
	for _, c := range customers {
		if filter.Matches(c) {
			matched = append(matched, c)
		}
	}

	start, end := models.PageBounds(filter.Page, filter.Limit, len(matched))

	views := make([]CustomerView, 0, end-start)
	for _, c := range matched[start:end] {
		views = append(views, NewCustomerView(c))
	}

	result := &CustomerListResult{
		Customers: views,
		PageInfo:  models.NewPageInfo(filter.Page, filter.Limit, len(matched)),
	}

	s.store(ctx, key, result)

	return result, nil
}

// cached looks up a previous result. Cache errors count as a miss.
func (s *customerService) cached(ctx context.Context, key string) (*CustomerListResult, bool) {
	data, found, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("cache lookup failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return nil, false
	}
	if !found {
		return nil, false
	}

	var result CustomerListResult
	if err := json.Unmarshal(data, &result); err != nil {
		s.logger.Warn("discarding undecodable cache entry",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return nil, false
	}
	if result.Customers == nil {
		result.Customers = []CustomerView{}
	}

	return &result, true
}

func (s *customerService) store(ctx context.Context, key string, result *CustomerListResult) {
	data, err := json.Marshal(result)
	if err != nil {
		s.logger.Warn("failed to encode result for cache",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
		s.logger.Warn("cache store failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
