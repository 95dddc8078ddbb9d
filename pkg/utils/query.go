package utils

import (
	"net/url"
	"strings"
)

// queryParam is a query parameter with all of its non-blank values.
type queryParam struct {
	Key    string
	Values []string
}

// queryParams keeps parameters in order of first appearance, which
// url.Values cannot do.
type queryParams []queryParam

// parseQuery splits a raw query string. Parameters whose values are blank are
// left out entirely, and undecodable escapes are kept verbatim.
func parseQuery(rawQuery string) queryParams {
	var params queryParams
	index := make(map[string]int)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		key, value := unescapeQuery(k), unescapeQuery(v)
		if value == "" {
			continue
		}
		if i, ok := index[key]; ok {
			params[i].Values = append(params[i].Values, value)
			continue
		}
		index[key] = len(params)
		params = append(params, queryParam{Key: key, Values: []string{value}})
	}
	return params
}

func unescapeQuery(s string) string {
	if u, err := url.QueryUnescape(s); err == nil {
		return u
	}
	return s
}

// singleValued returns the parameters that carry exactly one value and are
// not rejected by drop.
func (p queryParams) singleValued(drop func(key string) bool) queryParams {
	out := make(queryParams, 0, len(p))
	for _, param := range p {
		if len(param.Values) != 1 || drop(param.Key) {
			continue
		}
		out = append(out, param)
	}
	return out
}

func (p queryParams) encode() string {
	var b strings.Builder
	for _, param := range p {
		for _, v := range param.Values {
			if b.Len() > 0 {
				b.WriteByte('&')
			}
			b.WriteString(url.QueryEscape(param.Key))
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}
