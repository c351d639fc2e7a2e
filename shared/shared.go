package shared

import (
	"context"
	"fmt"
	"net/url"
	"scams/shared/constant"
	"scams/shared/dto"
	"strconv"
	"strings"
	"time"
)

const (
	cacheKeySeparator = ":"
	revokedKeyPrefix  = "revoked"
)

// BuildCacheKey joins the non-empty parts with ":".
func BuildCacheKey(prefix string, parts ...string) string {
	keys := []string{prefix}

	for _, part := range parts {
		if part != "" {
			keys = append(keys, part)
		}
	}

	return strings.Join(keys, cacheKeySeparator)
}

// RevokedTokenKey is the cache key marking a token id as signed out.
func RevokedTokenKey(tokenID string) string {
	return BuildCacheKey(revokedKeyPrefix, tokenID)
}

func FilterByID(id int64, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Eq(table, fieldID, id),
		},
	}
}

// ParseInt64 parses a path or query value as a positive identifier.
func ParseInt64(value, name string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}

	return id, nil
}

// OptionalInt64 returns nil when the query parameter is absent.
func OptionalInt64(query url.Values, name string) (*int64, error) {
	value := query.Get(name)
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	id, err := ParseInt64(value, name)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

// OptionalInt returns nil when the query parameter is absent.
func OptionalInt(query url.Values, name string) (*int, error) {
	value := query.Get(name)
	if value == "" {
		return nil, nil //nolint:nilnil
	}

	number, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer", name)
	}

	return &number, nil
}

// Int64List accepts both repeated parameters (?id=1&id=2) and comma separated values (?id=1,2).
func Int64List(query url.Values, name string) ([]int64, error) {
	ids := []int64{}

	for _, raw := range query[name] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			id, err := ParseInt64(part, name)
			if err != nil {
				return nil, err
			}

			ids = append(ids, id)
		}
	}

	return ids, nil
}

// UserIDFromContext returns the acting user set by the auth middleware, or 0.
func UserIDFromContext(ctx context.Context) int64 {
	id, _ := ctx.Value(constant.ContextKeyUserID).(int64)

	return id
}

// TokenFromContext returns the id and expiry of the session token in use.
func TokenFromContext(ctx context.Context) (string, time.Time) {
	tokenID, _ := ctx.Value(constant.ContextKeyTokenID).(string)
	expiresAt, _ := ctx.Value(constant.ContextKeyTokenExp).(time.Time)

	return tokenID, expiresAt
}
