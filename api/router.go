package api

import (
	"net/http"

	"github.com/Domenick1991/departures/internal/service/flights"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every handler under the root group.
func NewRouter(service flights.FlightUseCase) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	root := router.Group("/")
	NewFlightHandler(service).Register(root)
	NewFareHandler().Register(root)
	return router
}
