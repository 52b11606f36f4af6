package handlers

import (
	"net/http"

	photographerRepo "shutterbook/database/repository/photographer"
	"shutterbook/models"
	"shutterbook/utils"

	"github.com/gin-gonic/gin"
)

// PhotographerHandler serves the photographer directory.
type PhotographerHandler struct {
	Repo photographerRepo.PhotographerRepository
}

// NewPhotographerHandler creates a new PhotographerHandler instance.
func NewPhotographerHandler(repo photographerRepo.PhotographerRepository) *PhotographerHandler {
	return &PhotographerHandler{Repo: repo}
}

// ListHandler returns directory entries, optionally filtered by
// ?city=&specialty=&maxRate=.
func (h *PhotographerHandler) ListHandler(c *gin.Context) {
	var filter models.PhotographerFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid filter", err.Error())
		return
	}

	results, err := h.Repo.List(c.Request.Context(), filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"photographers": results})
}

// GetByIDHandler returns one directory entry.
func (h *PhotographerHandler) GetByIDHandler(c *gin.Context) {
	p, err := h.Repo.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
