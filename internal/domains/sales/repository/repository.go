package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"risecheckout/infras/otel"
	"risecheckout/infras/postgres"
	"risecheckout/internal/domains/sales/model"
	"risecheckout/shared"
	gDto "risecheckout/shared/dto"
	gRepo "risecheckout/shared/repository"
)

type Sales interface {
	Insert(ctx context.Context, order model.Order) error
	Exist(ctx context.Context, id string) (bool, error)
	Get(ctx context.Context, vendorID, id string) (model.Order, error)
	ListOrders(ctx context.Context, filter model.OrderFilter, params gDto.QueryParams) ([]model.Order, error)
	CountOrders(ctx context.Context, filter model.OrderFilter) (int, error)
	ListCreatedBetween(ctx context.Context, vendorID string, start, end time.Time, params gDto.QueryParams) ([]model.Order, error)
}

type repositoryImpl struct {
	repo gRepo.Repository[model.Order]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Sales {
	return &repositoryImpl{
		repo: gRepo.NewRepository[model.Order](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, order model.Order) error {
	return r.repo.Insert(ctx, order) //nolint:wrapcheck
}

func (r *repositoryImpl) Exist(ctx context.Context, id string) (bool, error) {
	return r.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, vendorID, id string) (model.Order, error) {
	return r.repo.Get(ctx, vendorScope(vendorID, shared.FilterByID(id, model.FieldID, model.TableName))) //nolint:wrapcheck
}

func (r *repositoryImpl) ListOrders(ctx context.Context, filter model.OrderFilter, params gDto.QueryParams) ([]model.Order, error) {
	return r.repo.GetAll(ctx, params, orderFilter(filter)) //nolint:wrapcheck
}

func (r *repositoryImpl) CountOrders(ctx context.Context, filter model.OrderFilter) (int, error) {
	return r.repo.Count(ctx, orderFilter(filter)) //nolint:wrapcheck
}

// ListCreatedBetween returns every order of the vendor with start <= created_at <= end.
func (r *repositoryImpl) ListCreatedBetween(ctx context.Context, vendorID string, start, end time.Time, params gDto.QueryParams) ([]model.Order, error) {
	return r.ListOrders(ctx, model.OrderFilter{VendorID: vendorID, Start: start, End: end}, params)
}

func orderFilter(filter model.OrderFilter) gDto.FilterGroup {
	group := vendorScope(filter.VendorID, shared.FilterCreatedBetween(filter.Start, filter.End, model.TableName))

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for idx, status := range filter.Statuses {
			statuses[idx] = status.String()
		}

		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    statuses,
			Operator: gDto.FilterOperatorIn,
			Table:    model.TableName,
		})
	}

	return group
}

func vendorScope(vendorID string, group gDto.FilterGroup) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldVendorID,
				Value:    vendorID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			group,
		},
	}
}
