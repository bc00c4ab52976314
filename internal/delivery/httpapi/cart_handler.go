package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/furnishfusion/storefront/internal/usecase"
)

// CartHandler serves the session cart. No login needed; the cart
// follows the session cookie.
type CartHandler struct {
	cart *usecase.CartUseCase
}

func NewCartHandler(cart *usecase.CartUseCase) *CartHandler {
	return &CartHandler{cart: cart}
}

func (h *CartHandler) View(c *gin.Context) {
	view, err := h.cart.View(c.Request.Context(), sessionFrom(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CartHandler) Add(c *gin.Context) {
	productID, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}
	product, err := h.cart.Add(c.Request.Context(), sessionFrom(c), productID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": product.Name + " added to cart"})
}

type cartUpdateRequest struct {
	Action string `json:"action"`
}

func (h *CartHandler) Update(c *gin.Context) {
	productID, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}
	var req cartUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	sess := sessionFrom(c)
	if err := h.cart.Update(c.Request.Context(), sess, productID, req.Action); err != nil {
		fail(c, err)
		return
	}
	view, err := h.cart.View(c.Request.Context(), sess)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
