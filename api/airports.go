package api

import (
	"net/http"

	"github.com/Domenick1991/airportregistry/internal/domain"
	"github.com/Domenick1991/airportregistry/internal/service/airports"
	"github.com/gin-gonic/gin"
)

type AirportHandler struct {
	service airports.AirportUseCase
}

type airportRequest struct {
	Name      string `json:"airport_name"`
	Terminals int    `json:"no_of_terminals"`
	City      string `json:"city"`
}

type airportNameResponse struct {
	AirportName string `json:"airport_name"`
}

func NewAirportHandler(service airports.AirportUseCase) *AirportHandler {
	return &AirportHandler{service: service}
}

func (h *AirportHandler) Register(router *gin.RouterGroup) {
	router.POST("/airports", h.create)
	router.GET("/airports/largest", h.largest)
}

func (h *AirportHandler) create(c *gin.Context) {
	var req airportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, err.Error())
		return
	}

	airport := &domain.Airport{Name: req.Name, Terminals: req.Terminals}
	if req.City != "" {
		city, err := domain.ParseCity(req.City)
		if err != nil {
			writeBadRequest(c, err.Error())
			return
		}
		airport.City = city
	}

	if err := h.service.AddAirport(c.Request.Context(), airport); err != nil {
		writeFailure(c, err)
		return
	}
	writeSuccess(c, http.StatusCreated)
}

func (h *AirportHandler) largest(c *gin.Context) {
	name, err := h.service.LargestAirportName(c.Request.Context())
	if err != nil {
		writeFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, airportNameResponse{AirportName: name})
}
