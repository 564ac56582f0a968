package api

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/Domenick1991/departures/internal/domain"
	"github.com/Domenick1991/departures/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type boardResponse struct {
	Airport domain.Airport  `json:"airport"`
	Flights []domain.Flight `json:"flights"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/departures", h.board)
	router.GET("/departures/text", h.departures)
	router.GET("/departures/debug", h.diagnostics)
	router.POST("/flights", h.create)
	router.GET("/flights/:id", h.get)
	router.PATCH("/flights/:id/status", h.updateStatus)
	router.POST("/alerts", h.alert)
}

func (h *FlightHandler) board(c *gin.Context) {
	board, err := h.service.Board(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, boardResponse{Airport: board.Airport(), Flights: board.Flights()})
}

func (h *FlightHandler) departures(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.Departures(c.Request.Context(), &buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

func (h *FlightHandler) diagnostics(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.service.Diagnostics(c.Request.Context(), &buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", buf.Bytes())
}

func (h *FlightHandler) create(c *gin.Context) {
	var req flights.AddFlightInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.AddFlight(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, flight)
}

func (h *FlightHandler) get(c *gin.Context) {
	flight, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) updateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, err := domain.ParseFlightStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	flight, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, flight)
}

func (h *FlightHandler) alert(c *gin.Context) {
	alerts, err := h.service.AlertPassengers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrFlightNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnknownStatus), errors.Is(err, flights.ErrInvalidFlight):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
