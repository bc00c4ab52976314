package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/furnishfusion/storefront/internal/usecase"
)

// OrderHandler serves checkout, order history and product ratings.
type OrderHandler struct {
	orders    *usecase.OrderUseCase
	uploadDir string
}

func NewOrderHandler(orders *usecase.OrderUseCase, uploadDir string) *OrderHandler {
	return &OrderHandler{orders: orders, uploadDir: uploadDir}
}

// CheckoutPreview handles GET /api/checkout?coupon=CODE.
func (h *OrderHandler) CheckoutPreview(c *gin.Context) {
	preview, err := h.orders.CheckoutPreview(c.Request.Context(), sessionFrom(c), c.Query("coupon"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

// Place handles POST /api/orders as a multipart form so the UPI
// payment screenshot can ride along with the checkout fields.
func (h *OrderHandler) Place(c *gin.Context) {
	params := usecase.PlaceOrderParams{
		PaymentMethod:  c.PostForm("payment_method"),
		CouponCode:     c.PostForm("coupon_code"),
		ContactMobile:  c.PostForm("contact_mobile"),
		ContactAddress: c.PostForm("contact_address"),
	}

	if file, err := c.FormFile("payment_proof"); err == nil {
		url, err := saveUpload(c, file, h.uploadDir)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		params.PaymentProofURL = url
	}

	orderID, err := h.orders.PlaceOrder(c.Request.Context(), sessionFrom(c), params)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  fmt.Sprintf("Order #%d placed successfully!", orderID),
		"order_id": orderID,
	})
}

func (h *OrderHandler) List(c *gin.Context) {
	sess := sessionFrom(c)
	orders, err := h.orders.ListForUser(c.Request.Context(), sess.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	orderID, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}
	sess := sessionFrom(c)
	if err := h.orders.Cancel(c.Request.Context(), sess.UserID, orderID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
}

type rateRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Rate handles POST /api/products/:id/rate for purchased products.
func (h *OrderHandler) Rate(c *gin.Context) {
	productID, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}
	var req rateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	sess := sessionFrom(c)
	if err := h.orders.RateProduct(c.Request.Context(), sess.UserID, productID, req.Rating, req.Comment); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Thanks for your rating!"})
}
