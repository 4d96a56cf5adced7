// Package openapi loads and validates the published API document.
package openapi

import (
	"context"
	"fmt"

	"github.com/frahmantamala/budget-tracker/api"
	"github.com/getkin/kin-openapi/openapi3"
)

// Load parses the embedded document and validates it against the OpenAPI 3 schema.
func Load(ctx context.Context) (*openapi3.T, error) {
	return Parse(ctx, api.Document)
}

func Parse(ctx context.Context, data []byte) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: parse: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate: %w", err)
	}
	return doc, nil
}

// Operations lists "METHOD path" for every operation in the document.
func Operations(doc *openapi3.T) []string {
	var ops []string
	for path, item := range doc.Paths.Map() {
		for method := range item.Operations() {
			ops = append(ops, method+" "+path)
		}
	}
	return ops
}
