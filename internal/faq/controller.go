package faq

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sonicseats/internal/shared/utils/response"
)

// No service layer here: the FAQ endpoint is a plain whole-document read.
type Controller interface {
	GetFAQ(c *gin.Context)
}

type controller struct {
	repo Repository
}

func NewController(repo Repository) Controller {
	return &controller{repo: repo}
}

func (ctrl *controller) GetFAQ(c *gin.Context) {
	faqs, err := ctrl.repo.LoadAll()
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.JSON(c, http.StatusOK, faqs)
}
