package repository

import (
	"elevatorops-console/dal"
	"elevatorops-console/models"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// listItemPaths returns the item locations tried in order for an entity key
func listItemPaths(entityKey string) []string {
	paths := make([]string, 0, 6)
	if entityKey != "" {
		paths = append(paths, "data."+entityKey)
	}
	paths = append(paths, "data.items", "data")
	if entityKey != "" {
		paths = append(paths, entityKey)
	}
	return append(paths, "items", "@this")
}

// metaPaths are the pagination metadata locations tried in order
var metaPaths = []string{"meta", "data.pagination", "data.meta", "pagination"}

// NormalizeList turns any known list envelope into a Page. matched is false when
// no shape was recognized; the page is then empty rather than an error.
func NormalizeList[T any](env *dal.Envelope, entityKey string) (page *models.Page[T], matched bool) {
	page = &models.Page[T]{Items: []T{}}
	if !env.Valid() {
		return page, false
	}

	var items gjson.Result
	for _, p := range listItemPaths(entityKey) {
		r := env.Get(p)
		if r.IsArray() {
			items = r
			break
		}
	}
	if !items.Exists() {
		return page, false
	}

	decoded := make([]T, 0, len(items.Array()))
	if err := json.Unmarshal([]byte(items.Raw), &decoded); err != nil {
		return page, false
	}
	page.Items = decoded

	var meta gjson.Result
	for _, p := range metaPaths {
		r := env.Get(p)
		if r.IsObject() {
			meta = r
			break
		}
	}
	applyMeta(page, meta)
	return page, true
}

func applyMeta[T any](page *models.Page[T], meta gjson.Result) {
	n := len(page.Items)
	page.Total = firstInt(meta, n, "total", "totalItems", "count")
	page.Page = firstInt(meta, 1, "page", "currentPage")
	page.Limit = firstInt(meta, n, "limit", "pageSize", "perPage")
	page.TotalPages = firstInt(meta, -1, "totalPages", "total_pages", "pages")

	if page.Page < 1 {
		page.Page = 1
	}
	if page.TotalPages < 0 {
		if meta.Exists() && page.Limit > 0 {
			page.TotalPages = models.TotalPagesFor(page.Total, page.Limit)
		} else if n > 0 {
			page.TotalPages = 1
		} else {
			page.TotalPages = 0
		}
	}
}

func firstInt(meta gjson.Result, fallback int, keys ...string) int {
	if !meta.Exists() {
		return fallback
	}
	for _, k := range keys {
		if r := meta.Get(k); r.Exists() && (r.Type == gjson.Number || r.Type == gjson.String) {
			return int(r.Int())
		}
	}
	return fallback
}

// NormalizeItem extracts one record from data.<itemKey>, data, <itemKey> or the body itself
func NormalizeItem[T any](env *dal.Envelope, itemKey string) (*T, bool) {
	if !env.Valid() {
		return nil, false
	}
	paths := make([]string, 0, 4)
	if itemKey != "" {
		paths = append(paths, "data."+itemKey)
	}
	paths = append(paths, "data")
	if itemKey != "" {
		paths = append(paths, itemKey)
	}
	paths = append(paths, "@this")

	for _, p := range paths {
		r := env.Get(p)
		if !r.IsObject() || !r.Get("id").Exists() {
			continue
		}
		var item T
		if err := json.Unmarshal([]byte(r.Raw), &item); err != nil {
			return nil, false
		}
		return &item, true
	}
	return nil, false
}

// WriteSucceeded reads the success flag of a write envelope. Both a top-level
// and a nested data.success occur; absence of both counts as failure.
func WriteSucceeded(env *dal.Envelope) bool {
	if !env.Valid() {
		return false
	}
	for _, p := range []string{"success", "data.success"} {
		if r := env.Get(p); r.IsBool() {
			return r.Bool()
		}
	}
	return false
}
