package dto_test

import (
	"hotelier/shared/constant"
	"hotelier/shared/dto"
	"net/http"
	"net/url"
	"reflect"
	"testing"
)

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name: "eq operator",
			filter: dto.Filter{
				Field:    "email",
				Value:    "jane@x.com",
				Operator: dto.FilterOperatorEq,
			},
			expectedSQL:  "email = :email",
			expectedArgs: map[string]any{"email": "jane@x.com"},
		},
		{
			name: "eq operator with table prefix",
			filter: dto.Filter{
				Field:    "customer_id",
				Value:    int64(7),
				Operator: dto.FilterOperatorEq,
				Table:    "booking",
			},
			expectedSQL:  "booking.customer_id = :customer_id",
			expectedArgs: map[string]any{"customer_id": int64(7)},
		},
		{
			name: "like operator wraps the value in wildcards",
			filter: dto.Filter{
				Field:    "name",
				Value:    "jane",
				Operator: dto.FilterOperatorLike,
			},
			expectedSQL:  "LOWER(name) LIKE LOWER(:name) ",
			expectedArgs: map[string]any{"name": "%jane%"},
		},
		{
			name: "in operator expands slices into named args",
			filter: dto.Filter{
				Field:    "status",
				Value:    []string{"Pending", "Confirmed"},
				Operator: dto.FilterOperatorIn,
			},
			expectedSQL: "status IN (:status_0, :status_1) ",
			expectedArgs: map[string]any{
				"status_0": "Pending",
				"status_1": "Confirmed",
			},
		},
		{
			name: "is null operator takes no args",
			filter: dto.Filter{
				Field:    "deleted_at",
				Operator: dto.FilterIsNull,
			},
			expectedSQL:  "deleted_at IS NULL",
			expectedArgs: map[string]any{},
		},
		{
			name: "custom arg name overrides the field",
			filter: dto.Filter{
				ArgName:  "min_rating",
				Field:    "rating",
				Value:    3,
				Operator: dto.FilterOperatorGreaterEq,
			},
			expectedSQL:  "rating >= :min_rating",
			expectedArgs: map[string]any{"min_rating": 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.filter.GetWhereClause()

			if sql != tt.expectedSQL {
				t.Errorf("expected clause %q, got %q", tt.expectedSQL, sql)
			}

			if !reflect.DeepEqual(args, tt.expectedArgs) {
				t.Errorf("expected args %+v, got %+v", tt.expectedArgs, args)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty group yields empty clause", func(t *testing.T) {
		group := dto.FilterGroup{}

		sql, args := group.GetWhereClause()
		if sql != "" {
			t.Errorf("expected empty clause, got %q", sql)
		}

		if len(args) != 0 {
			t.Errorf("expected no args, got %+v", args)
		}
	})

	t.Run("defaults to AND between filters", func(t *testing.T) {
		group := dto.FilterGroup{
			Filters: []any{
				dto.Filter{Field: "role", Value: "admin", Operator: dto.FilterOperatorEq},
				dto.Filter{Field: "email", Value: "jane@x.com", Operator: dto.FilterOperatorEq},
			},
		}

		sql, args := group.GetWhereClause()
		expected := "(role = :role AND email = :email)"

		if sql != expected {
			t.Errorf("expected clause %q, got %q", expected, sql)
		}

		if args["role"] != "admin" || args["email"] != "jane@x.com" {
			t.Errorf("unexpected args %+v", args)
		}
	})

	t.Run("nested groups are parenthesized", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.Filter{Field: "customer_id", Value: int64(1), Operator: dto.FilterOperatorEq},
				dto.FilterGroup{
					Operator: dto.FilterGroupOperatorOr,
					Filters: []any{
						dto.Filter{ArgName: "st_pending", Field: "status", Value: "Pending", Operator: dto.FilterOperatorEq},
						dto.Filter{ArgName: "st_confirmed", Field: "status", Value: "Confirmed", Operator: dto.FilterOperatorEq},
					},
				},
			},
		}

		sql, args := group.GetWhereClause()
		expected := "(customer_id = :customer_id AND (status = :st_pending OR status = :st_confirmed))"

		if sql != expected {
			t.Errorf("expected clause %q, got %q", expected, sql)
		}

		if len(args) != 3 {
			t.Errorf("expected 3 args, got %+v", args)
		}
	})
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "with negative limit parameter",
			queryParams: map[string]string{
				"limit": "-10",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:  constant.DefaultValuePage,
				Limit: constant.DefaultValueLimit,
			},
		},
		{
			name: "sort direction is upper-cased",
			queryParams: map[string]string{
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				SortDir: dto.SortDirDesc,
			},
		},
		{
			name: "invalid sort direction is dropped",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with partial parameters and defaults enabled",
			queryParams: map[string]string{
				"page":    "3",
				"sort_by": "email",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:   3,
				Limit:  constant.DefaultValueLimit,
				SortBy: "email",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/customers")
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			if !reflect.DeepEqual(*queryParams, tt.expected) {
				t.Errorf("expected %+v, got %+v", tt.expected, *queryParams)
			}
		})
	}
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}

	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}
