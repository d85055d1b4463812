package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/intlportal/internal/pkg/export"
)

// sendFile answers with file as an attachment.
func sendFile(ctx *gin.Context, file *export.File) {
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	ctx.Data(http.StatusOK, file.ContentType, file.Body)
}
