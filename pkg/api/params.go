package api

import (
	"net/url"
	"strconv"

	"github.com/getmockd/hrmockd/pkg/query"
)

// parseParams splits a query string into pagination and filter inputs.
// Unparseable page values fall back to the defaults; every other key is
// offered to the collection's filters, first value wins.
func parseParams(values url.Values) query.Params {
	p := query.Params{Filters: make(map[string]string, len(values))}
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		switch key {
		case "page":
			p.Page = atoi(vals[0])
		case "itemsPerPage":
			p.ItemsPerPage = atoi(vals[0])
		default:
			p.Filters[key] = vals[0]
		}
	}
	return p
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
