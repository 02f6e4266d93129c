package graphql

import (
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// NewHandler returns the HTTP handler for the GraphQL endpoint. With
// playground enabled the endpoint also serves an interactive IDE on GET.
func NewHandler(schema graphql.Schema, playground bool) http.Handler {
	return handler.New(&handler.Config{
		Schema:     &schema,
		Pretty:     true,
		Playground: playground,
	})
}
