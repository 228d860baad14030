package pagination

import (
	"net/http"
	"net/url"
	"strconv"
)

type Response[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

func NewResponse[T any](r *http.Request, params Params, page Page[T]) Response[T] {
	results := page.Results
	if results == nil {
		results = []T{}
	}
	return Response[T]{
		Count:    page.Count,
		Next:     nextLink(r, params, page.Count),
		Previous: previousLink(r, params),
		Results:  results,
	}
}

func nextLink(r *http.Request, p Params, count int64) *string {
	if int64(p.Offset+p.Limit) >= count {
		return nil
	}
	return link(r, func(q url.Values) {
		q.Set("limit", strconv.Itoa(p.Limit))
		q.Set("offset", strconv.Itoa(p.Offset+p.Limit))
	})
}

func previousLink(r *http.Request, p Params) *string {
	if p.Offset <= 0 {
		return nil
	}
	return link(r, func(q url.Values) {
		q.Set("limit", strconv.Itoa(p.Limit))
		if p.Offset-p.Limit <= 0 {
			q.Del("offset")
		} else {
			q.Set("offset", strconv.Itoa(p.Offset-p.Limit))
		}
	})
}

func link(r *http.Request, edit func(url.Values)) *string {
	q := r.URL.Query()
	edit(q)
	u := url.URL{
		Scheme:   scheme(r),
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: q.Encode(),
	}
	s := u.String()
	return &s
}

func scheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
