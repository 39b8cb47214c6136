package handler

import (
	"customer-graph-api/internal/api/handler/dto"
	"net/http"
)

const welcomeMessage = "Welcome to the Customer API with REST and GraphQL. Visit /docs for REST API docs and /graphql for the GraphQL playground."

// Welcome handles GET /
// @Summary Welcome message
// @Description Returns a static message pointing at the API docs and the GraphQL endpoint.
// @Tags Info
// @Produce json
// @Success 200 {object} dto.MessageResponse "Welcome message"
// @Router / [get]
func Welcome(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.MessageResponse{Message: welcomeMessage})
}

// Health handles GET /health
// @Summary Liveness probe
// @Tags Info
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is up"
// @Router /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}
