package shared_test

import (
	"net/url"
	"scams/shared"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "limiter:10.0.0.1:curl", shared.BuildCacheKey("limiter", "10.0.0.1", "curl"))
	assert.Equal(t, "revoked:abc", shared.BuildCacheKey("revoked", "", "abc"))
	assert.Equal(t, "revoked", shared.BuildCacheKey("revoked"))
	assert.Equal(t, "revoked:abc", shared.RevokedTokenKey("abc"))
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(42, "id", "rooms")

	where, args := filter.GetWhereClause()

	assert.Equal(t, "(rooms.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(42)}, args)
}

func TestParseInt64(t *testing.T) {
	id, err := shared.ParseInt64("17", "room_id")
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)

	for _, bad := range []string{"", "abc", "0", "-3"} {
		_, err := shared.ParseInt64(bad, "room_id")
		assert.EqualError(t, err, "room_id must be a positive integer", bad)
	}
}

func TestOptionalInt64(t *testing.T) {
	query := url.Values{"building_id": {"3"}, "bad": {"x"}}

	value, err := shared.OptionalInt64(query, "building_id")
	require.NoError(t, err)
	require.NotNil(t, value)
	assert.Equal(t, int64(3), *value)

	missing, err := shared.OptionalInt64(query, "room_id")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	_, err = shared.OptionalInt64(query, "bad")
	assert.Error(t, err)
}

func TestOptionalInt(t *testing.T) {
	query := url.Values{"min_capacity": {"30"}}

	value, err := shared.OptionalInt(query, "min_capacity")
	require.NoError(t, err)
	assert.Equal(t, 30, *value)

	_, err = shared.OptionalInt(url.Values{"min_capacity": {"many"}}, "min_capacity")
	assert.Error(t, err)
}

func TestInt64List(t *testing.T) {
	tests := []struct {
		name     string
		query    url.Values
		expected []int64
		wantErr  bool
	}{
		{name: "absent", query: url.Values{}, expected: []int64{}},
		{name: "repeated", query: url.Values{"device_ids": {"1", "2"}}, expected: []int64{1, 2}},
		{name: "comma separated", query: url.Values{"device_ids": {"1, 3,"}}, expected: []int64{1, 3}},
		{name: "mixed", query: url.Values{"device_ids": {"1,2", "4"}}, expected: []int64{1, 2, 4}},
		{name: "invalid", query: url.Values{"device_ids": {"1,x"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := shared.Int64List(tt.query, "device_ids")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ids)
		})
	}
}
