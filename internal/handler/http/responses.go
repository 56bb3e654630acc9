package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/models"
)

// writeDetail writes an API error payload of the form {"detail": "..."}.
func writeDetail(w http.ResponseWriter, detail string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, statusCode)
}

// writeValidationDetail writes the per-field validation payload of the form
// {"detail": {"<field>": ["<message>", ...]}}.
func writeValidationDetail(w http.ResponseWriter, fields map[string][]string, statusCode int) {
	utils.WriteJSON(w, models.ValidationErrorResponse{Detail: fields}, statusCode)
}
