package public

import (
	"errors"

	"github.com/bullion-next/internal/constants"
	"github.com/bullion-next/internal/http/response"
	"github.com/bullion-next/internal/service"

	"github.com/gin-gonic/gin"
)

// 用户侧仅允许上传转账/收款凭证
var userUploadScenes = map[string]struct{}{
	constants.UploadScenePaymentProof: {},
	constants.UploadScenePayoutProof:  {},
}

// UploadProof 上传转账凭证，返回相对路径供下单/提现接口引用
func (h *Handler) UploadProof(c *gin.Context) {
	if _, ok := getUserID(c); !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.upload_file_required", nil)
		return
	}
	scene := c.DefaultPostForm("scene", constants.UploadScenePaymentProof)
	if _, ok := userUploadScenes[scene]; !ok {
		respondError(c, response.CodeBadRequest, "error.upload_type_invalid", nil)
		return
	}

	url, err := h.UploadService.SaveFile(file, scene)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUploadTooLarge):
			respondError(c, response.CodeBadRequest, "error.upload_too_large", nil)
		case errors.Is(err, service.ErrUploadTypeInvalid):
			respondError(c, response.CodeBadRequest, "error.upload_type_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.upload_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"url":      url,
		"filename": file.Filename,
		"size":     file.Size,
	})
}
