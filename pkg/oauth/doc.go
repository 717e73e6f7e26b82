// Package oauth provides a stateless mock OAuth 2.0 token endpoint.
//
// Only the client credentials grant is supported. Any request carrying
// grant_type=client_credentials and a non-empty client id and secret
// receives a signed HS256 JWT; nothing is stored on the server and
// credentials are never checked against a registry.
//
//	provider, err := oauth.NewProvider(oauth.Config{TTL: 30 * time.Minute})
//	if err != nil {
//	    return err
//	}
//	mux.HandleFunc("POST /oauth/token", oauth.NewHandler(provider, logger).HandleToken)
//
// Credentials may arrive as a form body, a JSON body or HTTP Basic
// authentication.
package oauth
