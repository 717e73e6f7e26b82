// Package query answers filtered, paginated reads over an immutable,
// ordered record collection.
//
// A Collection is built once from a slice of records, an id accessor and a
// closed set of filters. Query parameters that do not name one of those
// filters are ignored. Recognized filters compose conjunctively, matches keep
// insertion order, and pages are 1-based slices of the filtered sequence.
//
//	users := query.NewCollection("users", records, func(u User) string { return u.ID },
//	    query.Contains("firstName", func(u User) string { return u.FirstName }),
//	    query.Flag("deleted", func(u User) bool { return !u.Active }).WithDefault("false"),
//	)
//	page := users.List(query.Params{Filters: map[string]string{"firstName": "an"}})
//
// Collections never mutate after construction and are safe for concurrent use.
package query
