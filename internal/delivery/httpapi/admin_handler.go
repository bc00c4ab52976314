package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/furnishfusion/storefront/internal/domain/entity"
	"github.com/furnishfusion/storefront/internal/usecase"
)

// AdminHandler serves the back office.
type AdminHandler struct {
	admin     *usecase.AdminUseCase
	uploadDir string
}

func NewAdminHandler(admin *usecase.AdminUseCase, uploadDir string) *AdminHandler {
	return &AdminHandler{admin: admin, uploadDir: uploadDir}
}

func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.admin.Dashboard(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) Products(c *gin.Context) {
	products, err := h.admin.Products(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// AddProduct handles a multipart form so the product image can be
// uploaded in the same request.
func (h *AdminHandler) AddProduct(c *gin.Context) {
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)
	rating, _ := strconv.ParseFloat(c.PostForm("rating"), 64)

	product := entity.Product{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Price:       price,
		Category:    c.PostForm("category"),
		Rating:      rating,
		ImageURL:    c.PostForm("image_url"),
	}

	if file, err := c.FormFile("image"); err == nil {
		url, err := saveUpload(c, file, h.uploadDir)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		product.ImageURL = url
	}

	id, err := h.admin.AddProduct(c.Request.Context(), product)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product added", "product_id": id})
}

func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}
	if err := h.admin.DeleteProduct(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

func (h *AdminHandler) Orders(c *gin.Context) {
	orders, err := h.admin.Orders(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

type statusRequest struct {
	Status string `json:"status"`
}

func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.admin.UpdateOrderStatus(c.Request.Context(), orderID, req.Status); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

func (h *AdminHandler) VerifyPayment(c *gin.Context) {
	orderID, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}
	if err := h.admin.VerifyPayment(c.Request.Context(), orderID); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment verified"})
}

type couponRequest struct {
	Code          string  `json:"code"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
}

func (h *AdminHandler) AddCoupon(c *gin.Context) {
	var req couponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	id, err := h.admin.AddCoupon(c.Request.Context(), req.Code, req.DiscountType, req.DiscountValue)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Coupon created", "coupon_id": id})
}

func (h *AdminHandler) Coupons(c *gin.Context) {
	coupons, err := h.admin.Coupons(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupons": coupons})
}

type couponToggleRequest struct {
	Active bool `json:"active"`
}

func (h *AdminHandler) SetCouponActive(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID"})
		return
	}
	var req couponToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.admin.SetCouponActive(c.Request.Context(), id, req.Active); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon updated"})
}

func (h *AdminHandler) DeleteCoupon(c *gin.Context) {
	id, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID"})
		return
	}
	if err := h.admin.DeleteCoupon(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted"})
}

// Contact is registered publicly too; the storefront footer reads it.
func (h *AdminHandler) Contact(c *gin.Context) {
	info, err := h.admin.Contact(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *AdminHandler) UpdateContact(c *gin.Context) {
	var info entity.ContactInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := h.admin.UpdateContact(c.Request.Context(), info); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact info updated"})
}

// UploadUPIQR stores a new checkout QR image.
func (h *AdminHandler) UploadUPIQR(c *gin.Context) {
	file, err := c.FormFile("qr_image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "QR image file is required"})
		return
	}
	url, err := saveUpload(c, file, h.uploadDir)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.admin.SaveUPIQR(c.Request.Context(), url); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "UPI QR updated", "image_url": url})
}

// ImportCatalog bulk-loads products from an uploaded .xlsx file.
func (h *AdminHandler) ImportCatalog(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	src, err := file.Open()
	if err != nil {
		fail(c, err)
		return
	}
	defer src.Close()

	count, err := h.admin.ImportCatalog(c.Request.Context(), src)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Imported %d products", count), "imported": count})
}

// ExportCatalog streams the catalog as an .xlsx download.
func (h *AdminHandler) ExportCatalog(c *gin.Context) {
	data, err := h.admin.ExportCatalog(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	filename := fmt.Sprintf("catalog-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
