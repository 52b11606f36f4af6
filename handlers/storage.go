package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	photographerRepo "shutterbook/database/repository/photographer"
	"shutterbook/services/storage"
	"shutterbook/utils"

	"github.com/gin-gonic/gin"
)

// StorageHandler handles portfolio media uploads.
type StorageHandler struct {
	StorageSvc    storage.StorageService
	Photographers photographerRepo.PhotographerRepository
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService, photographers photographerRepo.PhotographerRepository) *StorageHandler {
	return &StorageHandler{StorageSvc: svc, Photographers: photographers}
}

// UploadPortfolioHandler uploads one portfolio image for a photographer and
// appends its delivery URL to the directory entry.
func (h *StorageHandler) UploadPortfolioHandler(c *gin.Context) {
	photographerID := c.PostForm("photographerId")
	if photographerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing photographerId", "")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to buffer upload", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	ctx := c.Request.Context()
	publicID, err := h.StorageSvc.UploadFile(ctx, tempFilePath, "portfolios/"+photographerID)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "upload failed", err.Error())
		return
	}

	url, err := h.StorageSvc.GetDownloadURL(ctx, "image", publicID, 0*time.Second)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to resolve delivery URL", err.Error())
		return
	}

	if err := h.Photographers.AddPortfolioURL(ctx, photographerID, url); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"publicId": publicID, "url": url})
}
