package repository

import (
	"testing"
	"time"

	"risecheckout/infras/otel/mocks"
	"risecheckout/shared/dto"
	"risecheckout/shared/model"

	"github.com/stretchr/testify/assert"
)

type row struct {
	ID      string `db:"id"`
	Amount  int64  `db:"amount_cents"`
	Ignored string `db:"-"`
	Scratch string
	model.Metadata
}

func newRepo() Repository[row] {
	return NewRepository[row]("row", "rows", "id", nil, mocks.NewOtel())
}

func TestGetColumns(t *testing.T) {
	repo := newRepo()

	assert.Equal(t, []string{"id", "amount_cents", "created_at", "updated_at"}, repo.columns)
	assert.Equal(t, "rows.id, rows.amount_cents, rows.created_at, rows.updated_at", repo.selectColumns())
}

func TestOrdering(t *testing.T) {
	repo := newRepo()

	tests := []struct {
		name   string
		params dto.QueryParams
		want   string
	}{
		{"qualified column", dto.QueryParams{SortBy: "rows.created_at", SortDir: "DESC"}, "ORDER BY rows.created_at DESC"},
		{"bare column defaults asc", dto.QueryParams{SortBy: "amount_cents"}, "ORDER BY rows.amount_cents ASC"},
		{"lowercase direction", dto.QueryParams{SortBy: "id", SortDir: "desc"}, "ORDER BY rows.id DESC"},
		{"unknown column", dto.QueryParams{SortBy: "email; DROP TABLE rows", SortDir: "DESC"}, ""},
		{"other table", dto.QueryParams{SortBy: "users.id", SortDir: "ASC"}, ""},
		{"no sort", dto.QueryParams{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repo.ordering(tt.params))
		})
	}
}

func TestPagination(t *testing.T) {
	args := map[string]any{}
	assert.Equal(t, "LIMIT :limit OFFSET :offset", pagination(dto.QueryParams{Page: 3, Limit: 10}, args))
	assert.Equal(t, 10, args["limit"])
	assert.Equal(t, 20, args["offset"])

	args = map[string]any{}
	assert.Equal(t, "LIMIT :limit", pagination(dto.QueryParams{Limit: 5}, args))
	assert.NotContains(t, args, "offset")

	args = map[string]any{}
	assert.Empty(t, pagination(dto.QueryParams{Page: 2}, args))
	assert.Empty(t, args)
}

func TestBuildWhereClause(t *testing.T) {
	repo := newRepo()

	where, args := repo.BuildWhereClause(t.Context(), dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "id", Value: "r1", Operator: dto.FilterOperatorEq, Table: "rows"},
			dto.Filter{Field: "created_at", ArgName: "created", Value: dto.Bounds{From: time.Unix(0, 0), To: time.Unix(60, 0)}, Operator: dto.FilterOperatorBetween, Table: "rows"},
		},
	})

	assert.Equal(t, "WHERE (rows.id = :id AND rows.created_at BETWEEN :created_from AND :created_to)", where)
	assert.Len(t, args, 3)

	where, args = repo.BuildWhereClause(t.Context(), dto.FilterGroup{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}
