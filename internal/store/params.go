package store

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

const (
	// DefaultLimit applies when the caller sends no limit.
	DefaultLimit = 25
	// MaxLimit bounds result size regardless of caller input.
	MaxLimit = 100
)

// ListParams is the normalized descriptor list queries are built from.
// SortField is always one of the entity's columns and SortOrder is either
// "ASC" or "DESC", so both are safe to interpolate into SQL; offset and
// limit are bound as parameters.
type ListParams struct {
	Offset    int
	Limit     int
	SortField string
	SortOrder string
}

// ParseListParams normalizes offset/limit/sort_field/sort_order with safe
// defaults. Non-numeric or negative offsets fall back to 0, limits are
// clamped to (0, MaxLimit], unrecognized sort fields fall back to the
// primary key and sort order defaults to ascending.
func ParseListParams(values url.Values, sortable []string, primaryKey string) ListParams {
	p := ListParams{
		Offset:    0,
		Limit:     DefaultLimit,
		SortField: primaryKey,
		SortOrder: "ASC",
	}

	if n, err := strconv.Atoi(values.Get("offset")); err == nil && n > 0 {
		p.Offset = n
	}

	if n, err := strconv.Atoi(values.Get("limit")); err == nil && n > 0 {
		p.Limit = min(n, MaxLimit)
	}

	if f := values.Get("sort_field"); slices.Contains(sortable, f) {
		p.SortField = f
	}

	if strings.EqualFold(values.Get("sort_order"), "desc") {
		p.SortOrder = "DESC"
	}

	return p
}
