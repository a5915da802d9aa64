package purchases

import (
	"encoding/json"
	"errors"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"sonicseats/internal/concerts"
	"sonicseats/internal/shared/utils/response"
)

type Controller interface {
	PurchaseTickets(c *gin.Context)
}

type controller struct {
	service  Service
	validate *validator.Validate
}

// The paymentmethod rule lives on gin's shared validator engine; register it
// exactly once no matter how many controllers are built.
var registerRulesOnce sync.Once

func NewController(service Service) Controller {
	validate, _ := binding.Validator.Engine().(*validator.Validate)
	if validate != nil {
		registerRulesOnce.Do(func() {
			_ = validate.RegisterValidation("paymentmethod", validPaymentMethod)
		})
	}
	return &controller{service: service, validate: validate}
}

// validPaymentMethod accepts exactly the two supported payment methods.
func validPaymentMethod(fl validator.FieldLevel) bool {
	method := fl.Field().String()
	return method == PaymentMethodCash || method == PaymentMethodCreditCard
}

// PurchaseTickets validates the purchase form in the documented order:
// required fields, seats encoding, payment method, concert ID. Only then does
// the service touch storage, so a rejected request never writes anything.
func (ctrl *controller) PurchaseTickets(c *gin.Context) {
	var req PurchaseRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ClientError(c, "Concert ID, seats, and payment method are all required parameters.")
		return
	}

	// Seats must decode to a JSON array of strings; "null" decodes cleanly
	// but is not an array (an empty array decodes to a non-nil slice)
	var seats []string
	if err := json.Unmarshal([]byte(req.Seats), &seats); err != nil || seats == nil {
		response.ClientError(c, "The argument passed into the seats parameter is not valid."+
			" Check the documentation for details about proper formatting.")
		return
	}

	if err := ctrl.validate.Var(req.PaymentMethod, "paymentmethod"); err != nil {
		response.ClientError(c, `Payment method must be either "credit card" or "cash".`)
		return
	}

	concertID, err := strconv.Atoi(req.ConcertID)
	if err != nil {
		response.ClientError(c, "Concert ID needs to be an integer.")
		return
	}

	if _, err := ctrl.service.PurchaseTickets(c.Request.Context(), concertID, seats, req.PaymentMethod); err != nil {
		var seatErr *SeatError
		if errors.As(err, &seatErr) {
			response.ClientError(c, seatErr.Error())
			return
		}
		var outOfRange *concerts.OutOfRangeError
		if errors.As(err, &outOfRange) {
			response.ClientError(c, outOfRange.Error())
			return
		}
		response.ServerError(c, err)
		return
	}

	response.Ack(c, "Purchase successfully received!")
}
