package api

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
)

//go:embed openapi.yaml
var openapiYAML []byte

// Document is the API's OpenAPI description, parsed and validated.
type Document struct {
	doc    *openapi3.T
	router routers.Router
	json   []byte
}

// LoadDocument parses and validates the embedded OpenAPI document.
func LoadDocument(ctx context.Context) (*Document, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openapiYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAPI router: %w", err)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode OpenAPI document: %w", err)
	}

	return &Document{doc: doc, router: router, json: data}, nil
}

// T returns the parsed document.
func (d *Document) T() *openapi3.T { return d.doc }

// JSON returns the document encoded as JSON.
func (d *Document) JSON() []byte { return d.json }

// ValidateResponse checks a response produced for req against the
// operation the document declares for it.
func (d *Document) ValidateResponse(ctx context.Context, req *http.Request, status int, header http.Header, body []byte) error {
	route, pathParams, err := d.router.FindRoute(req)
	if err != nil {
		return fmt.Errorf("no matching route for %s %s: %w", req.Method, req.URL.Path, err)
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: status,
		Header: header,
		Options: &openapi3filter.Options{
			MultiError:            true,
			IncludeResponseStatus: true,
		},
	}
	input.SetBodyBytes(body)
	return openapi3filter.ValidateResponse(ctx, input)
}

// ValidateRecorded is ValidateResponse for a fully buffered response.
func (d *Document) ValidateRecorded(ctx context.Context, req *http.Request, resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return d.ValidateResponse(ctx, req, resp.StatusCode, resp.Header, body)
}
