package comments

import (
	"github.com/gin-gonic/gin"
)

func SetupCommentRoutes(router *gin.RouterGroup, controller Controller) {
	router.GET("/comments", controller.GetComments)   // GET /comments - List visitor comments
	router.POST("/contact", controller.SubmitComment) // POST /contact - Submit a comment for review
}
