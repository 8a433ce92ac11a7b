package controllers

import (
	"net/http"

	"actforbd/internal/delivery/http/helpers"
)

// HealthMessage is the liveness response body.
const HealthMessage = "ActForBD server is cooking 🍲"

// Health godoc
// @Summary Liveness check
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	helpers.WriteText(w, http.StatusOK, HealthMessage)
}
