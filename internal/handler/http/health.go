package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-registry/internal/utils"
	"github.com/MKhiriev/go-user-registry/models"
)

// health reports service liveness. It requires no authentication so that
// load balancers and orchestrators can probe it.
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "OK"}, http.StatusOK)
}
