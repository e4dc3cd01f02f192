package repository

import (
	"elevatorops-console/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idOnly struct {
	ID models.ID `json:"id"`
}

func TestNormalizeListShapes(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		key        string
		matched    bool
		ids        []models.ID
		total      int
		page       int
		limit      int
		totalPages int
	}{
		{
			name:    "keyed under data with pagination",
			body:    `{"success":true,"data":{"elevators":[{"id":5}],"pagination":{"total":5,"page":1,"limit":10,"totalPages":1}}}`,
			key:     "elevators",
			matched: true, ids: []models.ID{"5"},
			total: 5, page: 1, limit: 10, totalPages: 1,
		},
		{
			name:    "data array with top-level meta",
			body:    `{"success":true,"data":[{"id":"a"},{"id":"b"}],"meta":{"total":12,"page":2,"limit":2}}`,
			key:     "requests",
			matched: true, ids: []models.ID{"a", "b"},
			total: 12, page: 2, limit: 2, totalPages: 6,
		},
		{
			name:    "data.items",
			body:    `{"data":{"items":[{"id":1},{"id":2},{"id":3}]}}`,
			key:     "clients",
			matched: true, ids: []models.ID{"1", "2", "3"},
			total: 3, page: 1, limit: 3, totalPages: 1,
		},
		{
			name:    "top-level entity key",
			body:    `{"technicians":[{"id":9}],"pagination":{"total":"21","page":"3","limit":"10"}}`,
			key:     "technicians",
			matched: true, ids: []models.ID{"9"},
			total: 21, page: 3, limit: 10, totalPages: 3,
		},
		{
			name:    "bare array",
			body:    `[{"id":4}]`,
			key:     "reports",
			matched: true, ids: []models.ID{"4"},
			total: 1, page: 1, limit: 1, totalPages: 1,
		},
		{
			name:    "empty array",
			body:    `{"data":[]}`,
			key:     "reports",
			matched: true, ids: []models.ID{},
			total: 0, page: 1, limit: 0, totalPages: 0,
		},
		{
			name:    "unrecognized object",
			body:    `{"success":true,"data":{"count":3}}`,
			key:     "reports",
			matched: false, ids: []models.ID{},
			page: 0,
		},
		{
			name:    "not json",
			body:    `<html>bad gateway</html>`,
			key:     "reports",
			matched: false, ids: []models.ID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, matched := NormalizeList[idOnly](raw(200, tt.body), tt.key)

			require.NotNil(t, page)
			assert.Equal(t, tt.matched, matched)
			got := make([]models.ID, 0, len(page.Items))
			for _, item := range page.Items {
				got = append(got, item.ID)
			}
			assert.Equal(t, tt.ids, got)
			if tt.matched {
				assert.Equal(t, tt.total, page.Total)
				assert.Equal(t, tt.page, page.Page)
				assert.Equal(t, tt.limit, page.Limit)
				assert.Equal(t, tt.totalPages, page.TotalPages)
			}
		})
	}
}

func TestNormalizeItem(t *testing.T) {
	tests := []struct {
		name string
		body string
		ok   bool
		id   models.ID
	}{
		{"keyed", `{"success":true,"data":{"request":{"id":7}}}`, true, "7"},
		{"data object", `{"success":true,"data":{"id":"r-1"}}`, true, "r-1"},
		{"top-level key", `{"request":{"id":3}}`, true, "3"},
		{"bare object", `{"id":11,"status":"PENDING"}`, true, "11"},
		{"no id anywhere", `{"success":true,"data":{"message":"ok"}}`, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := NormalizeItem[idOnly](raw(200, tt.body), "request")

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				require.NotNil(t, item)
				assert.Equal(t, tt.id, item.ID)
			}
		})
	}
}

func TestWriteSucceeded(t *testing.T) {
	assert.True(t, WriteSucceeded(raw(200, `{"success":true}`)))
	assert.True(t, WriteSucceeded(raw(200, `{"data":{"success":true}}`)))
	assert.False(t, WriteSucceeded(raw(200, `{"success":false,"data":{"success":true}}`)))
	assert.False(t, WriteSucceeded(raw(200, `{"data":{"id":1}}`)))
	assert.False(t, WriteSucceeded(raw(200, ``)))
}
