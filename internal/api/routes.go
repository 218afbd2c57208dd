package api

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.Engine, h *Handler) {
    api := r.Group("/api")
    {
        api.GET("/health", health)
        api.GET("/qr", h.qr)
        api.GET("/layout", h.layout)
        api.POST("/text", h.text)
        api.POST("/card", h.card)
    }
}
