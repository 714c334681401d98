package controllers

import (
	"github.com/gin-gonic/gin"
	cmp "maragu.dev/gomponents"
)

const htmlContentType = "text/html; charset=utf-8"

// renderHTML writes a gomponents node as the response body.
func renderHTML(ctx *gin.Context, status int, node cmp.Node) {
	ctx.Status(status)
	ctx.Header("Content-Type", htmlContentType)
	if node == nil {
		return
	}
	if err := node.Render(ctx.Writer); err != nil {
		_ = ctx.Error(err)
	}
}
