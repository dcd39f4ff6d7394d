package handler

import (
	"net/http"

	"bookingnest-payments/internal/core/ports"
	"bookingnest-payments/pkg/apperror"
	"bookingnest-payments/pkg/response"

	"github.com/gin-gonic/gin"
)

// GeocodeHandler proxies reverse-geocoding lookups.
type GeocodeHandler struct {
	geocoder ports.Geocoder
}

// NewGeocodeHandler creates a new GeocodeHandler.
func NewGeocodeHandler(geocoder ports.Geocoder) *GeocodeHandler {
	return &GeocodeHandler{geocoder: geocoder}
}

// Reverse handles GET /reverse. Lat/lon are forwarded verbatim and the
// upstream payload is returned unmodified.
func (h *GeocodeHandler) Reverse(c *gin.Context) {
	lat := c.Query("lat")
	lon := c.Query("lon")

	raw, err := h.geocoder.Reverse(c.Request.Context(), lat, lon)
	if err != nil {
		response.Error(c, apperror.ErrGeocodeFailed(err))
		return
	}

	response.Raw(c, http.StatusOK, raw)
}
