package wms

import (
	"fmt"
	"net/url"
	"time"
)

// encodeQuery flattens a params mapping into query string values. One level
// of nesting is supported with bracket syntax (filter[depositor]=...), which
// is the shape the WMS expects for list filters.
func encodeQuery(params Params) url.Values {
	values := url.Values{}
	for key, val := range params {
		addQueryValue(values, key, val)
	}
	return values
}

func addQueryValue(values url.Values, key string, val any) {
	switch v := val.(type) {
	case nil:
		// omitted entirely, never sent as an empty value
	case Params:
		for sub, subVal := range v {
			addQueryValue(values, fmt.Sprintf("%s[%s]", key, sub), subVal)
		}
	case map[string]any:
		for sub, subVal := range v {
			addQueryValue(values, fmt.Sprintf("%s[%s]", key, sub), subVal)
		}
	case []string:
		for _, s := range v {
			values.Add(key, s)
		}
	case []any:
		for _, item := range v {
			addQueryValue(values, key, item)
		}
	case time.Time:
		values.Add(key, v.UTC().Format(time.RFC3339))
	case bool:
		values.Add(key, fmt.Sprintf("%t", v))
	default:
		values.Add(key, fmt.Sprint(v))
	}
}

// withDepositorFilter applies the optional-filter shape rule: an empty
// depositor list leaves the mapping without a filter key at all; a non-empty
// list nests it one level under "filter".
func withDepositorFilter(params Params, depositors []string) Params {
	if len(depositors) == 0 {
		return params
	}
	params["filter"] = Params{"depositor": depositors}
	return params
}
