package concerts

import (
	"github.com/gin-gonic/gin"
)

func SetupConcertRoutes(router *gin.RouterGroup, controller Controller) {
	router.GET("/concert/:concertId", controller.GetConcert) // GET /concert/:concertId - Concert details
	router.GET("/concerts", controller.GetAllConcerts)       // GET /concerts - Browse/filter the catalog
}
