package shared_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"medibook/shared"
	"medibook/shared/constant"
	"medibook/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total", total: 0, limit: 10, expected: 1},
		{name: "zero limit", total: 25, limit: 0, expected: 1},
		{name: "exact division", total: 20, limit: 10, expected: 2},
		{name: "rounded up", total: 21, limit: 10, expected: 3},
		{name: "single page", total: 3, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Status string    `db:"status"`
		Notes  string    `db:"notes"`
		When   time.Time `db:"checked_at"`
		Hidden string
	}

	now := time.Now()
	fields := shared.TransformFields(updateRequest{Status: "checked", When: now}, "doctor-1")

	assert.Equal(t, "checked", fields["status"])
	assert.Equal(t, now, fields["checked_at"])
	assert.Equal(t, "doctor-1", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)

	// Zero-valued and untagged fields stay out of the update.
	assert.NotContains(t, fields, "notes")
	assert.NotContains(t, fields, "Hidden")
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID("abc", "id", "bookings")

	assert.Len(t, group.Filters, 1)

	filter, ok := group.Filters[0].(dto.Filter)
	assert.True(t, ok)
	assert.Equal(t, "id", filter.Field)
	assert.Equal(t, "abc", filter.Value)
	assert.Equal(t, dto.FilterOperatorEq, filter.Operator)
	assert.Equal(t, "bookings", filter.Table)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:get:42", shared.BuildCacheKey("booking:get", "42"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}

	filterA := shared.FilterByID("doc-1", "doctor_id", "bookings")
	filterB := shared.FilterByID("doc-2", "doctor_id", "bookings")

	keyA := shared.BuildCacheKeyWithQuery("booking:gets", params, filterA)
	keyB := shared.BuildCacheKeyWithQuery("booking:gets", params, filterB)
	keyARepeat := shared.BuildCacheKeyWithQuery("booking:gets", params, filterA)

	assert.Equal(t, keyA, keyARepeat)
	assert.NotEqual(t, keyA, keyB)
}
