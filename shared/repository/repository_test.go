package repository

import (
	"strings"
	"testing"

	"hotelier/infras/otel/mocks"
	"hotelier/shared/dto"
)

type sortEntity struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Email string `db:"email"`
}

func newSortRepository() Repository[sortEntity] {
	return NewRepository[sortEntity]("sortEntity", "customers", "id", nil, mocks.NewOtel())
}

func TestRepository_OrderClause(t *testing.T) {
	repo := newSortRepository()

	tests := []struct {
		name     string
		params   dto.QueryParams
		expected string
	}{
		{
			name:     "no sort requested",
			params:   dto.QueryParams{},
			expected: "",
		},
		{
			name:     "known column ascending",
			params:   dto.QueryParams{SortBy: "name", SortDir: dto.SortDirAsc},
			expected: "ORDER BY customers.name ASC",
		},
		{
			name:     "known column descending",
			params:   dto.QueryParams{SortBy: "email", SortDir: dto.SortDirDesc},
			expected: "ORDER BY customers.email DESC",
		},
		{
			name:     "primary column",
			params:   dto.QueryParams{SortBy: "id", SortDir: dto.SortDirAsc},
			expected: "ORDER BY customers.id ASC",
		},
		{
			name:     "unknown column is dropped",
			params:   dto.QueryParams{SortBy: "password", SortDir: dto.SortDirAsc},
			expected: "",
		},
		{
			name: "subquery payload is dropped",
			params: dto.QueryParams{
				SortBy:  "(CASE WHEN (SELECT password FROM staff LIMIT 1) LIKE 'a%' THEN id END)",
				SortDir: dto.SortDirAsc,
			},
			expected: "",
		},
		{
			name:     "direction outside ASC/DESC is dropped",
			params:   dto.QueryParams{SortBy: "name", SortDir: "asc; DROP TABLE customers"},
			expected: "",
		},
		{
			name:     "sort key without direction is dropped",
			params:   dto.QueryParams{SortBy: "name"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause := repo.orderClause(tt.params)

			if clause != tt.expected {
				t.Errorf("expected clause %q, got %q", tt.expected, clause)
			}
		})
	}
}

func TestRepository_OrderClause_NeverEchoesInput(t *testing.T) {
	repo := newSortRepository()

	payloads := []string{
		"id--",
		"id, (SELECT 1)",
		"name DESC, id",
		"pg_sleep(5)",
	}

	for _, payload := range payloads {
		clause := repo.orderClause(dto.QueryParams{SortBy: payload, SortDir: dto.SortDirAsc})

		if clause != "" {
			t.Errorf("expected payload %q to be dropped, got clause %q", payload, clause)
		}

		if strings.Contains(clause, payload) {
			t.Errorf("clause %q echoes raw input %q", clause, payload)
		}
	}
}
