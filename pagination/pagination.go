// Package pagination implements limit/offset pagination whose pages are
// cached, rows and total count together, for a fixed time.
package pagination

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"github.com/Kariqs/storefront-api/cache"
	"gorm.io/gorm"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
	CacheTimeout = 300 * time.Second

	cacheKeyPrefix = "cached_paginator"
)

var ErrInvalidPage = errors.New("invalid page")

type Params struct {
	Limit  int
	Offset int
}

// ParseParams reads limit and offset from a query string. A missing or
// malformed limit falls back to DefaultLimit; a malformed offset to 0.
func ParseParams(q url.Values) Params {
	p := Params{Limit: DefaultLimit}
	if v, err := strconv.Atoi(q.Get("limit")); err == nil && v > 0 {
		p.Limit = min(v, MaxLimit)
	}
	if v, err := strconv.Atoi(q.Get("offset")); err == nil && v > 0 {
		p.Offset = v
	}
	return p
}

// PageNumber is the 1-based page the offset falls in.
func (p Params) PageNumber() int {
	return p.Offset/p.Limit + 1
}

// CacheKey identifies a request shape: path, limit and offset.
func CacheKey(path string, p Params) string {
	return fmt.Sprintf("%s:%s:%d:%d", cacheKeyPrefix, path, p.Limit, p.Offset)
}

type Page[T any] struct {
	Results []T
	Count   int64
	Number  int
}

type cachedPage[T any] struct {
	Rows  []T   `json:"rows"`
	Count int64 `json:"count"`
}

type Paginator struct {
	store   cache.Store
	timeout time.Duration
}

func New(store cache.Store) *Paginator {
	return &Paginator{store: store, timeout: CacheTimeout}
}

func (pg *Paginator) WithTimeout(d time.Duration) *Paginator {
	return &Paginator{store: pg.store, timeout: d}
}

// Paginate returns the page of query selected by params. The page is looked
// up in the cache under key first; on a miss both the rows and the total
// count are computed and stored as a single value. Cache failures are logged
// and the page is served uncached.
func Paginate[T any](ctx context.Context, pg *Paginator, query *gorm.DB, key string, params Params) (Page[T], error) {
	if params.Limit <= 0 {
		return Page[T]{}, ErrInvalidPage
	}
	number := params.PageNumber()
	if number < 1 {
		return Page[T]{}, ErrInvalidPage
	}
	pageKey := fmt.Sprintf("%s:%d:%d", key, params.Limit, number)

	if cached, ok := lookup[T](ctx, pg.store, pageKey); ok {
		return Page[T]{Results: cached.Rows, Count: cached.Count, Number: number}, nil
	}

	page, err := fetch[T](ctx, query, params.Limit, number)
	if err != nil {
		return Page[T]{}, err
	}

	b, err := json.Marshal(cachedPage[T]{Rows: page.Results, Count: page.Count})
	if err == nil {
		err = pg.store.Set(ctx, pageKey, b, pg.timeout)
	}
	if err != nil {
		log.Printf("page cache: unable to store %s: %v", pageKey, err)
	}
	return page, nil
}

func lookup[T any](ctx context.Context, store cache.Store, pageKey string) (cachedPage[T], bool) {
	var cached cachedPage[T]
	b, ok, err := store.Get(ctx, pageKey)
	if err != nil {
		log.Printf("page cache: unable to read %s: %v", pageKey, err)
		return cached, false
	}
	if !ok {
		return cached, false
	}
	if err := json.Unmarshal(b, &cached); err != nil {
		log.Printf("page cache: discarding undecodable %s: %v", pageKey, err)
		return cached, false
	}
	return cached, true
}

// fetch counts the rows of query and loads the requested page. A page past
// the last one is invalid, except page 1 of an empty result.
func fetch[T any](ctx context.Context, query *gorm.DB, limit, number int) (Page[T], error) {
	var count int64
	if err := query.WithContext(ctx).Count(&count).Error; err != nil {
		return Page[T]{}, err
	}

	numPages := int((count + int64(limit) - 1) / int64(limit))
	if number > numPages && number != 1 {
		return Page[T]{}, ErrInvalidPage
	}

	rows := make([]T, 0, limit)
	if err := query.WithContext(ctx).Limit(limit).Offset((number - 1) * limit).Find(&rows).Error; err != nil {
		return Page[T]{}, err
	}
	return Page[T]{Results: rows, Count: count, Number: number}, nil
}
