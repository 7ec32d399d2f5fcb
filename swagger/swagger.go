// Package swagger serves the embedded OpenAPI document of the HTTP API.
package swagger

import (
	_ "embed"
	"net/http"
)

//go:embed openapi.yaml
var document []byte

func Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(document)
	})
}
