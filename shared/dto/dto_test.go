package dto_test

import (
	"net/http/httptest"
	"scams/shared/constant"
	"scams/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected dto.QueryParams
		wantErr  bool
	}{
		{
			name:     "defaults when absent",
			url:      "/v1/schedules/me",
			expected: dto.QueryParams{Limit: constant.DefaultValueLimit, Offset: 0},
		},
		{
			name:     "explicit values",
			url:      "/v1/schedules/me?limit=5&offset=20",
			expected: dto.QueryParams{Limit: 5, Offset: 20},
		},
		{
			name:    "zero limit rejected",
			url:     "/v1/schedules/me?limit=0",
			wantErr: true,
		},
		{
			name:    "negative offset rejected",
			url:     "/v1/schedules/me?offset=-1",
			wantErr: true,
		},
		{
			name:    "non numeric limit rejected",
			url:     "/v1/schedules/me?limit=ten",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.url, nil)

			var params dto.QueryParams
			err := params.FromRequest(req, constant.DefaultValueLimit)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "eq with table",
			filter:    dto.Eq("schedules", "room_id", int64(1)),
			wantWhere: "schedules.room_id = :room_id",
			wantArgs:  map[string]any{"room_id": int64(1)},
		},
		{
			name:      "arg name override",
			filter:    dto.Filter{ArgName: "building", Field: "building_id", Table: "rooms", Operator: dto.FilterOperatorEq, Value: int64(2)},
			wantWhere: "rooms.building_id = :building",
			wantArgs:  map[string]any{"building": int64(2)},
		},
		{
			name:      "greater or equal",
			filter:    dto.Filter{Field: "capacity", Table: "rooms", Operator: dto.FilterOperatorGreaterEq, Value: 30},
			wantWhere: "rooms.capacity >= :capacity",
			wantArgs:  map[string]any{"capacity": 30},
		},
		{
			name:      "in expands slice",
			filter:    dto.Filter{Field: "device_id", Operator: dto.FilterOperatorIn, Value: []int64{3, 4}},
			wantWhere: "device_id IN (:device_id_0, :device_id_1)",
			wantArgs:  map[string]any{"device_id_0": int64(3), "device_id_1": int64(4)},
		},
		{
			name:      "in with empty slice matches nothing",
			filter:    dto.Filter{Field: "device_id", Operator: dto.FilterOperatorIn, Value: []int64{}},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "in with scalar falls back to equality",
			filter:    dto.Filter{Field: "room_id", Table: "schedules", Operator: dto.FilterOperatorIn, Value: int64(9)},
			wantWhere: "schedules.room_id = :room_id",
			wantArgs:  map[string]any{"room_id": int64(9)},
		},
		{
			name:      "plain query carries args",
			filter:    dto.Filter{Operator: dto.FilterPlainQuery, Value: "rooms.id > :min_id", Args: map[string]any{"min_id": 7}},
			wantWhere: "(rooms.id > :min_id)",
			wantArgs:  map[string]any{"min_id": 7},
		},
		{
			name:      "is null",
			filter:    dto.Filter{Field: "image_url", Table: "rooms", Operator: dto.FilterIsNull},
			wantWhere: "rooms.image_url IS NULL",
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
	t.Run("empty group", func(t *testing.T) {
		group := dto.FilterGroup{}
		where, args := group.GetWhereClause()

		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("defaults to AND and nests groups", func(t *testing.T) {
		group := dto.FilterGroup{}
		group.Add(dto.Eq("schedules", "date", "2025-12-10")).
			Add(dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Eq("schedules", "room_id", int64(1)),
					dto.Filter{ArgName: "room_id_alt", Field: "room_id", Table: "schedules", Operator: dto.FilterOperatorEq, Value: int64(2)},
				},
			})

		where, args := group.GetWhereClause()

		assert.Equal(t, "(schedules.date = :date AND (schedules.room_id = :room_id OR schedules.room_id = :room_id_alt))", where)
		assert.Equal(t, map[string]any{"date": "2025-12-10", "room_id": int64(1), "room_id_alt": int64(2)}, args)
	})
}
