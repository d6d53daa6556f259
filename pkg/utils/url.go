package utils

import (
	"net/url"
	"sort"
	"strings"
)

// EncodeQueryValue percent-encodes a single query value. Unlike the default
// form encoding it never emits a raw '+' for spaces, and '+' and ';' inside
// the value are always escaped — the API's path matching treats them
// specially when they appear raw inside path-like query values.
func EncodeQueryValue(v string) string {
	v = url.QueryEscape(v)
	return strings.ReplaceAll(v, "+", "%20")
}

// EncodeQuery renders a parameter map as a canonical query string with
// deterministic key order.
func EncodeQuery(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(EncodeQueryValue(params[k]))
	}
	return sb.String()
}
