package comments

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sonicseats/internal/shared/utils/response"
)

type Controller interface {
	GetComments(c *gin.Context)
	SubmitComment(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) GetComments(c *gin.Context) {
	comments, err := ctrl.service.ListComments()
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, comments)
}

func (ctrl *controller) SubmitComment(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ClientError(c, "Category and description are both required parameters.")
		return
	}

	if err := ctrl.service.AddComment(c.Request.Context(), req); err != nil {
		response.ServerError(c, err)
		return
	}

	response.Ack(c, "Request to submit comment successfully received!")
}
