// Package api serves the synthetic HR dataset over HTTP.
//
// Every collection is exposed as a read-only list route returning a
// paginated {data, metadata} envelope and a detail route keyed by record
// id. The server also hosts the OAuth token stub, a health summary, an API
// index, the embedded OpenAPI document and, optionally, Prometheus metrics.
//
// Basic usage:
//
//	snap, err := dataset.Build(dataset.Options{})
//	if err != nil {
//		return err
//	}
//	provider, err := oauth.NewProvider(oauth.Config{})
//	if err != nil {
//		return err
//	}
//	srv, err := api.New(snap, provider, api.WithAddr(":3000"))
//	if err != nil {
//		return err
//	}
//	return srv.Run(ctx)
package api
