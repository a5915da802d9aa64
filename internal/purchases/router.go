package purchases

import (
	"github.com/gin-gonic/gin"
)

func SetupPurchaseRoutes(router *gin.RouterGroup, controller Controller) {
	router.POST("/purchase", controller.PurchaseTickets) // POST /purchase - Buy seats for a concert
}
