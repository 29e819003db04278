package httpserver

import (
	"net/http"

	cartsvc "perfume-storefront/internal/service/cart"

	"github.com/gin-gonic/gin"
)

func (h *handlers) getCart(c *gin.Context) {
	cart, err := h.deps.CartSvc.Get(c.Request.Context(), sessionIDFrom(c.Request.Context()))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

// updateCart applies a batch of cart actions.
func (h *handlers) updateCart(c *gin.Context) {
	var in cartsvc.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid body"))
		return
	}
	cart, err := h.deps.CartSvc.Update(c.Request.Context(), sessionIDFrom(c.Request.Context()), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

func (h *handlers) clearCart(c *gin.Context) {
	if err := h.deps.CartSvc.Clear(c.Request.Context(), sessionIDFrom(c.Request.Context())); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handlers) addLine(c *gin.Context) {
	var in cartsvc.LineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid body"))
		return
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	cart, err := h.deps.CartSvc.Add(c.Request.Context(), sessionIDFrom(c.Request.Context()), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

func (h *handlers) changeLineQuantity(c *gin.Context) {
	var in cartsvc.LineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, errorBody("invalid body"))
		return
	}
	cart, err := h.deps.CartSvc.UpdateQuantity(c.Request.Context(), sessionIDFrom(c.Request.Context()), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

// removeLine takes the line identity from the query string:
// DELETE /cart/lines?productId=1&size=15ml.
func (h *handlers) removeLine(c *gin.Context) {
	in := cartsvc.LineInput{ProductID: c.Query("productId"), Size: c.Query("size")}
	cart, err := h.deps.CartSvc.Remove(c.Request.Context(), sessionIDFrom(c.Request.Context()), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}
