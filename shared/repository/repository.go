package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"risecheckout/infras/otel"
	"risecheckout/infras/postgres"
	"risecheckout/shared/constant"
	"risecheckout/shared/dto"
	"risecheckout/shared/logger"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// uniqueViolation is the SQLSTATE postgres reports for a duplicate key.
const uniqueViolation = pq.ErrorCode("23505")

var (
	errRequiredFilter = errors.New("required filter")

	// ErrDuplicate is returned by Insert when a unique constraint rejects the row.
	ErrDuplicate = errors.New("duplicate record")
)

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// Repository maps T onto one table through its `db` struct tags. Embedded
// structs contribute their columns.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entitas       string
	primaryColumn string
	columns       []string
}

func NewRepository[T any](entitasName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		columns:       getColumns(reflect.TypeOf(zero)),
	}
}

func (repo *Repository[T]) spanName(op string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entitas, op)
}

func (repo *Repository[T]) insert(ctx context.Context, exec execer, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("insert"))
	defer scope.End()

	placeholders := make([]string, len(repo.columns))
	for idx, col := range repo.columns {
		placeholders[idx] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.columns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := exec.NamedExecContext(ctx, query, model)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("failed to insert data (%s): %w", repo.entitas, ErrDuplicate)
		}

		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Insert"))
	defer scope.End()

	return repo.insert(ctx, repo.db.Write, model) //nolint:wrapcheck
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Exist"))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	exist := false

	if err := repo.read(ctx, query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &exist, args)
	}); err != nil {
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entitas, err)
	}

	return exist, nil
}

// Get returns the zero T when no row matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()

	var model T

	where, args := repo.BuildWhereClause(ctx, filter)
	if where == "" {
		return model, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s LIMIT 1", repo.selectColumns(), repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err := repo.read(ctx, query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &model, args)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entitas, err)
	}

	return model, nil
}

// GetAll lists rows matching filter. A SortBy that is not one of the mapped
// columns is ignored.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	query := strings.Join(slices.DeleteFunc([]string{
		fmt.Sprintf("SELECT %s FROM %s", repo.selectColumns(), repo.table),
		where,
		repo.ordering(params),
		pagination(params, args),
	}, func(part string) bool { return part == "" }), " ")

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	if err := repo.read(ctx, query, func(stmt *sqlx.NamedStmt) error {
		return stmt.SelectContext(ctx, &models, args)
	}); err != nil {
		scope.TraceError(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Count"))
	defer scope.End()

	where, args := repo.BuildWhereClause(ctx, filter)

	query := strings.TrimSpace(fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s", repo.table, repo.primaryColumn, repo.table, where))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var count int

	if err := repo.read(ctx, query, func(stmt *sqlx.NamedStmt) error {
		return stmt.GetContext(ctx, &count, args)
	}); err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", repo.entitas, err)
	}

	return count, nil
}

// read prepares query on the read pool and hands the statement to run.
// sql.ErrNoRows is returned unwrapped and unlogged.
func (repo *Repository[T]) read(ctx context.Context, query string, run func(stmt *sqlx.NamedStmt) error) error {
	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	err = run(stmt)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		logger.ErrorWithStack(err)
	}

	return err
}

func (repo *Repository[T]) selectColumns() string {
	columns := make([]string, len(repo.columns))
	for idx, col := range repo.columns {
		columns[idx] = fmt.Sprintf("%s.%s", repo.table, col)
	}

	return strings.Join(columns, ", ")
}

func (repo *Repository[T]) ordering(params dto.QueryParams) string {
	column := strings.TrimPrefix(params.SortBy, repo.table+".")
	if column == "" || !slices.Contains(repo.columns, column) {
		return ""
	}

	direction := strings.ToUpper(params.SortDir)
	if direction != dto.SortDirDesc {
		direction = dto.SortDirAsc
	}

	return fmt.Sprintf("ORDER BY %s.%s %s", repo.table, column, direction)
}

func pagination(params dto.QueryParams, args map[string]any) string {
	if params.Limit <= 0 {
		return ""
	}

	args["limit"] = params.Limit

	offset := params.Offset()
	if offset == 0 {
		return "LIMIT :limit"
	}

	args["offset"] = offset

	return "LIMIT :limit OFFSET :offset"
}

func (repo *Repository[T]) BuildWhereClause(ctx context.Context, filter dto.FilterGroup) (string, map[string]any) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("BuildWhereClause"))
	defer scope.End()

	where, args := filter.GetWhereClause()

	if where == "" {
		return where, map[string]any{}
	}

	return "WHERE " + where, args
}

func getColumns(reflectType reflect.Type) (columns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, getColumns(field.Type)...)

			continue
		}

		if dbTag := field.Tag.Get("db"); dbTag != "" && dbTag != "-" {
			columns = append(columns, dbTag)
		}
	}

	return columns
}
