package sales

import (
	"net/http"

	"risecheckout/infras/otel"
	"risecheckout/internal/domains/sales/model"
	"risecheckout/internal/domains/sales/model/dto"
	"risecheckout/internal/domains/sales/service"
	"risecheckout/shared/constant"
	"risecheckout/shared/orderstatus"
	gDto "risecheckout/shared/dto"
	"risecheckout/shared/validator"
	"risecheckout/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Sales
	otel    otel.Otel
}

func New(service service.Sales, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sales", func(routerGroup chi.Router) {
		routerGroup.Post("/orders", handler.CreateOrder)
		routerGroup.Get("/orders", handler.GetOrders)
		routerGroup.Get("/orders/{id}", handler.GetOrderByID)
		routerGroup.Get("/statuses", handler.GetStatuses)
		routerGroup.Get("/summary", handler.GetSummary)
		routerGroup.Get("/hourly", handler.GetHourly)
		routerGroup.Get("/daily", handler.GetDaily)
		routerGroup.Post("/reports/daily", handler.ExportDaily)
	})
}

func rangeQuery(r *http.Request) (gDto.RangeQuery, error) {
	query := gDto.RangeQuery{}
	query.FromRequest(r)

	if err := validator.ValidateStruct(&query); err != nil {
		return query, err //nolint:wrapcheck
	}

	return query, nil
}

// CreateOrder records an order reported by a payment gateway.
// @Summary Record an order
// @Description Store an order; the gateway status is folded into a canonical status.
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Create Order Request"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sales/orders [post]
func (handler *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOrder")
	defer scope.End()

	req := dto.CreateOrderRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	order, err := handler.service.CreateOrder(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Order created successfully")

	response.WithJSON(w, http.StatusCreated, order)
}

// GetOrders lists a vendor's orders created in the selected period.
// @Summary List orders
// @Tags Sales
// @Produce json
// @Param vendor_id query string true "Vendor ID"
// @Param preset query string false "today, yesterday, 7days, 30days, max or custom"
// @Param from query string false "Custom range start (YYYY-MM-DD or RFC 3339)"
// @Param to query string false "Custom range end (YYYY-MM-DD or RFC 3339)"
// @Param timezone query string false "IANA timezone"
// @Param locale query string false "Display locale"
// @Param status query string false "Comma separated canonical statuses"
// @Param page query int false "Page"
// @Param limit query int false "Limit, at most 100"
// @Param sort_by query string false "created_at or amount_cents"
// @Param sort_dir query string false "ASC or DESC"
// @Success 200 {object} dto.GetOrdersResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sales/orders [get]
func (handler *Handler) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrders")
	defer scope.End()

	req := dto.ListOrdersRequest{}
	req.FromRequest(r)
	req.SetStatuses(r.URL.Query().Get(constant.RequestParamStatus))

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, model.FieldCreatedAt, model.FieldAmountCents)

	orders, err := handler.service.ListOrders(ctx, req, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get orders")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, orders)
}

// GetStatuses lists the canonical order statuses for filter pickers.
// @Summary List order statuses
// @Tags Sales
// @Produce json
// @Success 200 {array} orderstatus.Option
// @Router /v1/sales/statuses [get]
func (handler *Handler) GetStatuses(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, orderstatus.Options())
}

// GetOrderByID retrieves a single order of a vendor.
// @Summary Get an order by ID
// @Tags Sales
// @Produce json
// @Param id path string true "Order ID"
// @Param vendor_id query string true "Vendor ID"
// @Param timezone query string false "IANA timezone"
// @Param locale query string false "Display locale"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sales/orders/{id} [get]
func (handler *Handler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOrderByID")
	defer scope.End()

	query, err := rangeQuery(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	order, err := handler.service.GetOrder(ctx, query, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get order by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, order)
}

// GetSummary aggregates a vendor's orders over the selected period.
// @Summary Sales summary
// @Tags Sales
// @Produce json
// @Param vendor_id query string true "Vendor ID"
// @Param preset query string false "today, yesterday, 7days, 30days, max or custom"
// @Param from query string false "Custom range start"
// @Param to query string false "Custom range end"
// @Param timezone query string false "IANA timezone"
// @Param locale query string false "Display locale"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sales/summary [get]
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	query, err := rangeQuery(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	summary, err := handler.service.Summary(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sales summary")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, summary)
}

// GetHourly buckets paid orders by local hour.
// @Summary Sales by hour
// @Tags Sales
// @Produce json
// @Param vendor_id query string true "Vendor ID"
// @Param preset query string false "today, yesterday, 7days, 30days, max or custom"
// @Param timezone query string false "IANA timezone"
// @Success 200 {object} dto.HourlyResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sales/hourly [get]
func (handler *Handler) GetHourly(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHourly")
	defer scope.End()

	query, err := rangeQuery(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	chart, err := handler.service.HourlyChart(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hourly chart")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, chart)
}

// GetDaily returns one bucket per local day of the period.
// @Summary Sales by day
// @Tags Sales
// @Produce json
// @Param vendor_id query string true "Vendor ID"
// @Param preset query string false "today, yesterday, 7days, 30days, max or custom"
// @Param timezone query string false "IANA timezone"
// @Success 200 {object} dto.DailyResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sales/daily [get]
func (handler *Handler) GetDaily(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDaily")
	defer scope.End()

	query, err := rangeQuery(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	series, err := handler.service.DailySeries(ctx, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get daily series")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, series)
}

// ExportDaily uploads the daily series as a gzip CSV and returns its URL.
// @Summary Export daily report
// @Tags Sales
// @Accept json
// @Produce json
// @Param request body dto.ExportReportRequest true "Export Report Request"
// @Success 201 {object} dto.ExportReportResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Failure 503 {object} response.Error
// @Router /v1/sales/reports/daily [post]
func (handler *Handler) ExportDaily(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportDaily")
	defer scope.End()

	req := dto.ExportReportRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	req.SetDefaults()

	exported, err := handler.service.ExportDaily(ctx, req.RangeQuery)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export daily report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Daily report exported")

	response.WithJSON(w, http.StatusCreated, exported)
}
