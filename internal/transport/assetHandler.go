package transport

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ds124wfegd/WB_L3/6/internal/entity"
)

func (h *AssetHandler) Generate(c *gin.Context) {
	photo, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No profile photo provided"})
		return
	}
	logo, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No logo provided"})
		return
	}

	// Проверка типа файлов
	if !isValidImageType(filepath.Ext(photo.Filename)) || !isValidImageType(filepath.Ext(logo.Filename)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image type. Supported: jpg, jpeg, png, gif"})
		return
	}

	req := entity.GenerateTask{
		Type:    entity.AssetType(c.PostForm("type")),
		Variant: entity.Variant(c.PostForm("variant")),
		Caption: c.PostForm("caption"),
	}
	if req.Type != "" && req.Type != entity.TypeProfile && req.Type != entity.TypeBanner {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid type. Supported: profile, banner"})
		return
	}
	if req.Variant != "" && !req.Variant.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown variant"})
		return
	}

	id := uuid.New().String()

	if c.PostForm("async") == "true" {
		batch, err := h.service.GenerateAsync(id, photo, logo, req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusAccepted, entity.GenerateResponse{
			ID:     batch.ID,
			Status: batch.Status,
		})
		return
	}

	batch, err := h.service.GenerateSync(id, photo, logo, req)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entity.BatchResponse{
		ID:     batch.ID,
		Status: batch.Status,
		Assets: batch.Assets,
	})
}

func (h *AssetHandler) GetBatch(c *gin.Context) {
	id := c.Param("id")

	batch, err := h.service.GetBatch(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Batch not found"})
		return
	}

	c.JSON(http.StatusOK, entity.BatchResponse{
		ID:     batch.ID,
		Status: batch.Status,
		Assets: batch.Assets,
		Error:  batch.Error,
	})
}

func (h *AssetHandler) GetAsset(c *gin.Context) {
	id := c.Param("id")

	path, ok := h.service.AssetPath(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		return
	}

	c.Header("Content-Type", "image/png")
	c.File(path)
}

func (h *AssetHandler) DeleteBatch(c *gin.Context) {
	id := c.Param("id")

	if err := h.service.DeleteBatch(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Batch not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Batch deleted successfully"})
}

func isValidImageType(ext string) bool {
	validTypes := map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".gif":  true,
	}
	return validTypes[ext]
}
