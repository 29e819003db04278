package httpserver

import (
	"net/http"

	"perfume-storefront/internal/domain"

	"github.com/gin-gonic/gin"
)

func (h *handlers) checkout(c *gin.Context) {
	var customer domain.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid body"))
		return
	}
	res, err := h.deps.CheckoutSvc.Submit(c.Request.Context(), sessionIDFrom(c.Request.Context()), customer)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

type subscribeRequest struct {
	Email string `json:"email"`
}

func (h *handlers) subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid body"))
		return
	}
	res, err := h.deps.NewsletterSvc.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		h.writeError(c, err)
		return
	}
	status := http.StatusCreated
	if res.AlreadySubscribed {
		status = http.StatusOK
	}
	c.JSON(status, res)
}
