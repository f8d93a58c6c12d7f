package api

import (
	"net/http"

	"github.com/avdku/airport-service/internal/domain"
	"github.com/avdku/airport-service/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type AirplaneTypeHandler struct {
	service catalog.FleetUseCase
}

type airplaneTypeResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type airplaneTypeRequest struct {
	Name string `json:"name"`
}

func NewAirplaneTypeHandler(service catalog.FleetUseCase) *AirplaneTypeHandler {
	return &AirplaneTypeHandler{service: service}
}

func (h *AirplaneTypeHandler) Register(router *gin.RouterGroup, staffOnly gin.HandlerFunc) {
	router.GET("/airplane_types", h.list)
	router.GET("/airplane_types/:id", h.get)
	router.POST("/airplane_types", staffOnly, h.create)
	router.PUT("/airplane_types/:id", staffOnly, h.update)
	router.POST("/airplane_types/:id/upload-image", staffOnly, h.uploadImage)
}

func (h *AirplaneTypeHandler) list(c *gin.Context) {
	types, err := h.service.ListAirplaneTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	resp := make([]airplaneTypeResponse, 0, len(types))
	for _, t := range types {
		resp = append(resp, toAirplaneTypeResponse(t))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AirplaneTypeHandler) get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	t, err := h.service.GetAirplaneType(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirplaneTypeResponse(*t))
}

func (h *AirplaneTypeHandler) create(c *gin.Context) {
	var req airplaneTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "error", err.Error())
		return
	}
	t, err := h.service.CreateAirplaneType(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toAirplaneTypeResponse(*t))
}

func (h *AirplaneTypeHandler) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req airplaneTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "error", err.Error())
		return
	}
	t, err := h.service.RenameAirplaneType(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirplaneTypeResponse(*t))
}

func (h *AirplaneTypeHandler) uploadImage(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		respondBadRequest(c, "image", "image file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer file.Close()

	t, err := h.service.UploadAirplaneTypeImage(c.Request.Context(), id, fileHeader.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toAirplaneTypeResponse(*t))
}

func toAirplaneTypeResponse(t domain.AirplaneType) airplaneTypeResponse {
	return airplaneTypeResponse{ID: t.ID, Name: t.Name, Image: mediaURL(t.Image)}
}

func mediaURL(path string) string {
	if path == "" {
		return ""
	}
	return "/media/" + path
}
