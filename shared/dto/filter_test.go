package dto_test

import (
	"testing"
	"time"
	"tripavail/shared/dto"

	"github.com/stretchr/testify/assert"
)

func TestFilter_GetWhereClause(t *testing.T) {
	day := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality with table",
			filter:    dto.Filter{Field: "status", Value: "HOLD", Operator: dto.FilterOperatorEq, Table: "bookings"},
			wantWhere: "bookings.status = :status",
			wantArgs:  map[string]any{"status": "HOLD"},
		},
		{
			name:      "not equal",
			filter:    dto.Filter{Field: "status", Value: "FAILED", Operator: dto.FilterOperatorNotEq},
			wantWhere: "status != :status",
			wantArgs:  map[string]any{"status": "FAILED"},
		},
		{
			name:      "named lower bound",
			filter:    dto.Filter{ArgName: "date_from", Field: "date", Value: day, Operator: dto.FilterOperatorGreaterEq},
			wantWhere: "date >= :date_from",
			wantArgs:  map[string]any{"date_from": day},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "released_at", Operator: dto.FilterIsNull},
			wantWhere: "released_at IS NULL",
			wantArgs:  map[string]any{},
		},
		{
			name:      "unknown operator",
			filter:    dto.Filter{Field: "status", Value: "HOLD", Operator: "like"},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "room_id", Value: "room-1", Operator: dto.FilterOperatorEq},
			dto.Filter{Field: "ignored", Operator: "bogus"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{ArgName: "status_hold", Field: "status", Value: "HOLD", Operator: dto.FilterOperatorEq},
					dto.Filter{ArgName: "status_pending", Field: "status", Value: "PAYMENT_PENDING", Operator: dto.FilterOperatorEq},
				},
			},
			"not a filter",
		},
	}

	where, args := group.GetWhereClause()

	assert.Equal(t, "(room_id = :room_id AND (status = :status_hold OR status = :status_pending))", where)
	assert.Equal(t, map[string]any{
		"room_id":        "room-1",
		"status_hold":    "HOLD",
		"status_pending": "PAYMENT_PENDING",
	}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}
