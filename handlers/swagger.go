package handlers

import (
	"log/slog"
	"net/http"

	"github.com/swaggo/swag/v2"
)

// SwaggerDoc serves the registered OpenAPI document to the Swagger UI.
func SwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		slog.Error("swagger doc unavailable", "error", err)
		writeError(w, http.StatusInternalServerError, "swagger doc unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}
