package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Endpoint is one row of the documentation page.
type Endpoint struct {
	Method      string
	Path        string
	Description string
}

// Endpoints documents the public listing API.
var Endpoints = []Endpoint{
	{http.MethodGet, "/", "This page."},
	{http.MethodPost, "/", "Create a listing from a JSON object with the keys name, description and listing_url."},
	{http.MethodGet, "/api/", "Page through listings. Query: page_no (default 1) and docs (default 15); docs*page_no documents are skipped."},
	{http.MethodPost, "/api/", "Same as POST /."},
	{http.MethodGet, "/api/listings/{id}", "Fetch one listing by string id or ObjectID."},
	{http.MethodPost, "/api/listings/{id}", "Replace name, description and listing_url of a listing."},
	{http.MethodDelete, "/api/listings/{id}", "Delete a listing."},
}

var docsTemplate = template.Must(template.New("index.html").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>{{ .Title }}</title>
  </head>
  <body>
    <h1>{{ .Title }}</h1>
    <p>All bodies are JSON. Errors come back as {"status": code, "error": text}.</p>
    <table>
      <tr><th>Method</th><th>Path</th><th>Description</th></tr>
      {{- range .Endpoints }}
      <tr><td>{{ .Method }}</td><td><code>{{ .Path }}</code></td><td>{{ .Description }}</td></tr>
      {{- end }}
    </table>
    <p>OpenAPI: <a href="/swagger/doc.json">/swagger/doc.json</a></p>
  </body>
</html>`))

// RegisterDocs registers the documentation routes.
// - GET /                  -> rendered HTML page listing the endpoints
// - GET /swagger/doc.json  -> machine-readable OpenAPI JSON
func RegisterDocs(rg *gin.Engine) {
	rg.SetHTMLTemplate(docsTemplate)

	rg.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{"Title": "Listings API", "Endpoints": Endpoints})
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "listings-api", "version": "v1.0.0" },
  "components": {
    "schemas": {
      "ListingInput": { "type": "object", "required": ["name", "description", "listing_url"], "properties": { "name": {}, "description": {}, "listing_url": {} } },
      "Message": { "type": "object", "properties": { "status": { "type": "integer" }, "message": { "type": "string" }, "id": { "type": "string" } } },
      "Error": { "type": "object", "properties": { "status": { "type": "integer" }, "error": { "type": "string" } } }
    }
  },
  "paths": {
    "/": {
      "get": { "summary": "Documentation page", "responses": { "200": { "description": "HTML" } } },
      "post": { "summary": "Create listing", "requestBody": { "content": { "application/json": { "schema": { "$ref": "#/components/schemas/ListingInput" } } } }, "responses": { "200": { "description": "created" }, "400": { "description": "missing field" } } }
    },
    "/api/": {
      "get": {
        "summary": "List listings",
        "parameters": [
          { "name": "page_no", "in": "query", "schema": { "type": "integer", "default": 1 } },
          { "name": "docs", "in": "query", "schema": { "type": "integer", "default": 15 } }
        ],
        "responses": { "200": { "description": "array of listings" }, "400": { "description": "bad page_no or docs" } }
      },
      "post": { "summary": "Create listing", "responses": { "200": { "description": "created" }, "400": { "description": "missing field" } } }
    },
    "/api/listings/{id}": {
      "parameters": [ { "name": "id", "in": "path", "required": true, "schema": { "type": "string" } } ],
      "get": { "summary": "Get listing", "responses": { "200": { "description": "listing" }, "400": { "description": "invalid id" }, "404": { "description": "not found" } } },
      "post": { "summary": "Update listing", "responses": { "200": { "description": "updated listing" }, "400": { "description": "invalid id or missing field" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete listing", "responses": { "200": { "description": "deleted" }, "400": { "description": "invalid id" }, "404": { "description": "not found" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
