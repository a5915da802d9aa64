package concerts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sonicseats/internal/shared/utils/response"
)

type Controller interface {
	GetConcert(c *gin.Context)
	GetAllConcerts(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetConcert(c *gin.Context) {
	concertIDStr := c.Param("concertId")
	concertID, err := strconv.Atoi(concertIDStr)
	if err != nil {
		response.ClientError(c, "Concert ID needs to be an integer.")
		return
	}

	concert, err := ctrl.service.GetConcertByID(c.Request.Context(), concertID)
	if err != nil {
		var outOfRange *OutOfRangeError
		if errors.As(err, &outOfRange) {
			response.ClientError(c, outOfRange.Error())
			return
		}
		response.ServerError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, concert)
}

func (ctrl *controller) GetAllConcerts(c *gin.Context) {
	var query ListQuery

	if err := c.ShouldBindQuery(&query); err != nil {
		response.ClientError(c, "Invalid query parameters.")
		return
	}

	concerts, err := ctrl.service.ListConcerts(c.Request.Context(), query)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, concerts)
}
