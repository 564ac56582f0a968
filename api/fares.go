package api

import (
	"net/http"

	"github.com/Domenick1991/departures/internal/fare"
	"github.com/gin-gonic/gin"
)

type FareHandler struct{}

type fareQuery struct {
	CheckedBags int `form:"checked_bags"`
	Distance    int `form:"distance"`
	Travelers   int `form:"travelers,default=1"`
}

func NewFareHandler() *FareHandler {
	return &FareHandler{}
}

func (h *FareHandler) Register(router *gin.RouterGroup) {
	router.GET("/fares", h.quote)
}

// quote prices the query as given; missing travelers counts as one.
func (h *FareHandler) quote(c *gin.Context) {
	var q fareQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, fare.NewQuote(q.CheckedBags, q.Distance, q.Travelers))
}
