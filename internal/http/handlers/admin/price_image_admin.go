package admin

import (
	"errors"

	"github.com/bullion-next/internal/http/response"
	"github.com/bullion-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminPriceImage 获取当前银价图
func (h *Handler) GetAdminPriceImage(c *gin.Context) {
	image, err := h.PriceImageService.GetCurrent()
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{"price_image": image})
}

// UpdatePriceImageRequest 更新银价图请求
type UpdatePriceImageRequest struct {
	ImagePath string `json:"image_path" binding:"required"`
	Caption   string `json:"caption"`
}

// UpdateAdminPriceImage 更新当日银价图
func (h *Handler) UpdateAdminPriceImage(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	var req UpdatePriceImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	image, err := h.PriceImageService.UpdateCurrent(adminID, req.ImagePath, req.Caption)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeBadRequest, "error.bad_request", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, image)
}
