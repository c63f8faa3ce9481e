package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"risecheckout/config"
	"risecheckout/infras/otel"
	"risecheckout/infras/s3"
	"risecheckout/internal/domains/sales/model"
	"risecheckout/internal/domains/sales/model/dto"
	"risecheckout/internal/domains/sales/report"
	"risecheckout/internal/domains/sales/repository"
	"risecheckout/shared"
	"risecheckout/shared/cache"
	"risecheckout/shared/constant"
	"risecheckout/shared/daterange"
	gDto "risecheckout/shared/dto"
	"risecheckout/shared/failure"
	gRepo "risecheckout/shared/repository"
	"risecheckout/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const cachePrefix = "sales"

type Sales interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (dto.OrderResponse, error)
	GetOrder(ctx context.Context, query gDto.RangeQuery, id string) (dto.OrderResponse, error)
	ListOrders(ctx context.Context, req dto.ListOrdersRequest, params gDto.QueryParams) (dto.GetOrdersResponse, error)
	Summary(ctx context.Context, query gDto.RangeQuery) (dto.SummaryResponse, error)
	HourlyChart(ctx context.Context, query gDto.RangeQuery) (dto.HourlyResponse, error)
	DailySeries(ctx context.Context, query gDto.RangeQuery) (dto.DailyResponse, error)
	ExportDaily(ctx context.Context, query gDto.RangeQuery) (dto.ExportReportResponse, error)
}

type serviceImpl struct {
	repo    repository.Sales
	cache   cache.RedisCache
	storage s3.S3
	tz      *timezone.Service
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.Sales, redisCache cache.RedisCache, storage s3.S3, tz *timezone.Service, cfg *config.Config, otel otel.Otel) Sales {
	return &serviceImpl{
		repo:    repo,
		cache:   redisCache,
		storage: storage,
		tz:      tz,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateOrder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	order := req.ToModel(s.tz.Now(), s.cfg.Analytics.Currency)

	if req.ID != "" {
		exist, err := s.repo.Exist(ctx, order.ID)
		if err != nil {
			log.Error().Err(err).Msg("failed to check if order exists")

			return res, fmt.Errorf("failed to check if order exists: %w", err)
		}

		if exist {
			return res, failure.BadRequestFromString("order already exists") // nolint:wrapcheck
		}
	}

	if err = s.repo.Insert(ctx, order); err != nil {
		if errors.Is(err, gRepo.ErrDuplicate) {
			return res, failure.BadRequestFromString("order already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create order")

		return res, fmt.Errorf("failed to create order: %w", err)
	}

	s.invalidate(ctx, order.VendorID)

	res.FromModel(s.tz, order)

	return res, nil
}

func (s *serviceImpl) GetOrder(ctx context.Context, query gDto.RangeQuery, id string) (res dto.OrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetOrder")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tz, err := s.viewer(query)
	if err != nil {
		return res, err
	}

	order, err := s.repo.Get(ctx, query.VendorID, id)
	if err != nil {
		log.Error().Err(err).Msg("failed to get order")

		return res, fmt.Errorf("failed to get order: %w", err)
	}

	if order.ID == "" {
		return res, failure.NotFound("order not found") // nolint:wrapcheck
	}

	res.FromModel(tz, order)

	return res, nil
}

func (s *serviceImpl) ListOrders(ctx context.Context, req dto.ListOrdersRequest, params gDto.QueryParams) (res dto.GetOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListOrders")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tz, rng, err := s.resolve(req.RangeQuery)
	if err != nil {
		return res, err
	}

	filter := req.Filter(rng)

	if params.SortBy == "" {
		params.SortBy = fmt.Sprintf("%s.%s", model.TableName, model.FieldCreatedAt)
		params.SortDir = gDto.SortDirDesc
	}

	var (
		total  int
		orders []model.Order
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		count, err := s.repo.CountOrders(groupCtx, filter)
		if err != nil {
			return fmt.Errorf("failed to count orders: %w", err)
		}

		total = count

		return nil
	})

	group.Go(func() error {
		list, err := s.repo.ListOrders(groupCtx, filter, params)
		if err != nil {
			return fmt.Errorf("failed to list orders: %w", err)
		}

		orders = list

		return nil
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to list orders")

		return res, err //nolint:wrapcheck
	}

	res.Range = rng
	res.FromModels(tz, orders, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Summary(ctx context.Context, query gDto.RangeQuery) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tz, rng, err := s.resolve(query)
	if err != nil {
		return res, err
	}

	key := s.cacheKey("summary", query.VendorID, tz, rng)
	if s.fromCache(ctx, key, &res) {
		return res, nil
	}

	orders, err := s.ordersIn(ctx, query.VendorID, rng)
	if err != nil {
		return res, err
	}

	res = summarize(orders, s.formatter(tz))
	res.Range = rng

	s.toCache(ctx, key, res)

	return res, nil
}

func (s *serviceImpl) HourlyChart(ctx context.Context, query gDto.RangeQuery) (res dto.HourlyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HourlyChart")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tz, rng, err := s.resolve(query)
	if err != nil {
		return res, err
	}

	key := s.cacheKey("hourly", query.VendorID, tz, rng)
	if s.fromCache(ctx, key, &res) {
		return res, nil
	}

	orders, err := s.ordersIn(ctx, query.VendorID, rng)
	if err != nil {
		return res, err
	}

	res = hourly(orders, tz, s.formatter(tz))
	res.Range = rng

	s.toCache(ctx, key, res)

	return res, nil
}

func (s *serviceImpl) DailySeries(ctx context.Context, query gDto.RangeQuery) (res dto.DailyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DailySeries")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tz, rng, err := s.resolve(query)
	if err != nil {
		return res, err
	}

	key := s.cacheKey("daily", query.VendorID, tz, rng)
	if s.fromCache(ctx, key, &res) {
		return res, nil
	}

	res, err = s.daily(ctx, query.VendorID, tz, rng)
	if err != nil {
		return res, err
	}

	s.toCache(ctx, key, res)

	return res, nil
}

func (s *serviceImpl) ExportDaily(ctx context.Context, query gDto.RangeQuery) (res dto.ExportReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportDaily")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tz, rng, err := s.resolve(query)
	if err != nil {
		return res, err
	}

	series, err := s.daily(ctx, query.VendorID, tz, rng)
	if err != nil {
		return res, err
	}

	payload, err := report.BuildDaily(series)
	if err != nil {
		log.Error().Err(err).Msg("failed to build daily report")

		return res, fmt.Errorf("failed to build daily report: %w", err)
	}

	first, last := tz.GetDateInTimezone(rng.Start), tz.GetDateInTimezone(rng.End)
	name := report.FileName(first, last, uuid.NewString())

	url, err := s.storage.Upload(ctx, s3.Object{
		Directory:       strings.Trim(s.cfg.Analytics.ReportDir, "/") + "/" + query.VendorID,
		Name:            name,
		ContentType:     constant.ContentTypeCSV,
		ContentEncoding: constant.EncodingGzip,
		Body:            payload,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to upload daily report")

		if errors.Is(err, s3.ErrUnavailable) {
			return res, failure.ServiceUnavailable("report storage is temporarily unavailable") // nolint:wrapcheck
		}

		return res, fmt.Errorf("failed to upload daily report: %w", err)
	}

	res.URL = url
	res.ObjectName = name
	res.Rows = len(series.Days)

	return res, nil
}

func (s *serviceImpl) daily(ctx context.Context, vendorID string, tz *timezone.Service, rng daterange.Range) (dto.DailyResponse, error) {
	orders, err := s.ordersIn(ctx, vendorID, rng)
	if err != nil {
		return dto.DailyResponse{}, err
	}

	res := dailySeries(orders, rng, tz, s.formatter(tz))
	res.Range = rng

	return res, nil
}

func (s *serviceImpl) ordersIn(ctx context.Context, vendorID string, rng daterange.Range) ([]model.Order, error) {
	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", model.TableName, model.FieldCreatedAt),
		SortDir: gDto.SortDirAsc,
	}

	orders, err := s.repo.ListCreatedBetween(ctx, vendorID, rng.Start, rng.End, params)
	if err != nil {
		log.Error().Err(err).Str("vendor_id", vendorID).Msg("failed to get orders in range")

		return nil, fmt.Errorf("failed to get orders in range: %w", err)
	}

	return orders, nil
}

// viewer returns the timezone service for the zone and locale asked for.
func (s *serviceImpl) viewer(query gDto.RangeQuery) (*timezone.Service, error) {
	tz := s.tz

	if query.Timezone != "" && query.Timezone != tz.Timezone() {
		derived, err := tz.WithTimezone(query.Timezone)
		if err != nil {
			return nil, failure.InvalidTimezoneParam
		}

		tz = derived
	}

	if query.Locale != "" && query.Locale != tz.Locale() {
		derived, err := tz.WithLocale(query.Locale)
		if err != nil {
			return nil, failure.BadRequest(err) // nolint:wrapcheck
		}

		tz = derived
	}

	return tz, nil
}

func (s *serviceImpl) resolve(query gDto.RangeQuery) (*timezone.Service, daterange.Range, error) {
	tz, err := s.viewer(query)
	if err != nil {
		return nil, daterange.Range{}, err
	}

	ranges := daterange.New(tz, daterange.WithMaxMonthsBack(s.cfg.Analytics.MaxMonthsBack))

	preset := daterange.PresetToday
	if query.Preset != "" {
		if preset, err = daterange.ParsePreset(query.Preset); err != nil {
			return nil, daterange.Range{}, failure.BadRequest(err) // nolint:wrapcheck
		}
	}

	var rng daterange.Range

	if preset == daterange.PresetCustom {
		rng, err = ranges.ParseCustomRange(query.From, query.To)
	} else {
		rng, err = ranges.GetRange(preset)
	}

	if err != nil {
		if errors.Is(err, timezone.ErrInvalidInstant) {
			return nil, daterange.Range{}, failure.InvalidDateParam
		}

		return nil, daterange.Range{}, failure.BadRequest(err) // nolint:wrapcheck
	}

	return tz, rng, nil
}

func (s *serviceImpl) cacheKey(op, vendorID string, tz *timezone.Service, rng daterange.Range) string {
	return shared.BuildCacheKey(cachePrefix, op, vendorID, tz.Timezone(), tz.Locale(), rng.StartISO, rng.EndISO)
}

func (s *serviceImpl) fromCache(ctx context.Context, key string, value any) bool {
	if s.cfg.Cache.TTL <= 0 {
		return false
	}

	if err := s.cache.Get(ctx, key, value); err != nil {
		if !cache.IsMiss(err) {
			log.Warn().Err(err).Str("key", key).Msg("failed to read sales cache")
		}

		return false
	}

	return true
}

func (s *serviceImpl) toCache(ctx context.Context, key string, value any) {
	if s.cfg.Cache.TTL <= 0 {
		return
	}

	if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to write sales cache")
	}
}

// invalidate drops every cached aggregate of the vendor.
func (s *serviceImpl) invalidate(ctx context.Context, vendorID string) {
	if s.cfg.Cache.TTL <= 0 {
		return
	}

	pattern := shared.BuildCacheKey(cachePrefix, constant.Asterix, vendorID, constant.Asterix)
	if err := s.cache.Clear(ctx, pattern); err != nil {
		log.Warn().Err(err).Str("pattern", pattern).Msg("failed to clear sales cache")
	}
}
