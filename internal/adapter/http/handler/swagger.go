package handler

import (
	"bytes"
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed openapi.yaml
var swaggerSpec []byte

// specServer is the servers entry baked into openapi.yaml.
const specServer = "http://127.0.0.1:8080"

// SwaggerSpec serves the Campus Ledger OpenAPI document. The servers entry is
// rewritten to the host that served it, so try-it-out calls hit this ledger
// instance and its active mode rather than the default port.
func SwaggerSpec(c *gin.Context) {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	spec := swaggerSpec
	if host := c.Request.Host; host != "" {
		spec = bytes.Replace(swaggerSpec, []byte(specServer), []byte(scheme+"://"+host), 1)
	}
	c.Data(http.StatusOK, "application/x-yaml", spec)
}

// SwaggerUI serves the API docs page. Writes are serialized by the in-flight
// guard, so the page fires one request at a time.
func SwaggerUI(c *gin.Context) {
	html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Campus Ledger - API Docs</title>
  <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: '/swagger/spec',
      dom_id: '#swagger-ui',
      tryItOutEnabled: true,
      requestSnippetsEnabled: false,
      supportedSubmitMethods: ['get', 'post', 'put', 'delete']
    });
  </script>
</body>
</html>`
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
