package faq

import (
	"github.com/gin-gonic/gin"
)

func SetupFAQRoutes(router *gin.RouterGroup, controller Controller) {
	router.GET("/faq", controller.GetFAQ) // GET /faq - Frequently asked questions
}
