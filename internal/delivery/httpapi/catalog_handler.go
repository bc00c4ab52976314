package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/furnishfusion/storefront/internal/domain/entity"
	"github.com/furnishfusion/storefront/internal/usecase"
)

// CatalogHandler serves product browsing, reviews and the wishlist.
type CatalogHandler struct {
	catalog *usecase.CatalogUseCase
}

func NewCatalogHandler(catalog *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// List handles GET /api/products with the filter query params
// category, min_price, max_price, min_rating and sort.
func (h *CatalogHandler) List(c *gin.Context) {
	filter := entity.ProductFilter{
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}
	if v, ok := queryFloat(c, "min_price"); ok {
		filter.MinPrice = &v
	}
	if v, ok := queryFloat(c, "max_price"); ok {
		filter.MaxPrice = &v
	}
	if v, ok := queryFloat(c, "min_rating"); ok {
		filter.MinRating = &v
	}

	sess := sessionFrom(c)
	listing, err := h.catalog.List(c.Request.Context(), filter, sess.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, listing)
}

func (h *CatalogHandler) Wishlist(c *gin.Context) {
	sess := sessionFrom(c)
	products, err := h.catalog.Wishlist(c.Request.Context(), sess.UserID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *CatalogHandler) AddToWishlist(c *gin.Context) {
	productID, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}
	sess := sessionFrom(c)
	if err := h.catalog.AddToWishlist(c.Request.Context(), sess.UserID, productID); err != nil {
		fail(c, err)
		return
	}
	count, _ := h.catalog.WishlistCount(c.Request.Context(), sess.UserID)
	c.JSON(http.StatusOK, gin.H{"message": "Added to wishlist", "wishlist_count": count})
}

func (h *CatalogHandler) RemoveFromWishlist(c *gin.Context) {
	productID, err := paramID(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}
	sess := sessionFrom(c)
	if err := h.catalog.RemoveFromWishlist(c.Request.Context(), sess.UserID, productID); err != nil {
		fail(c, err)
		return
	}
	count, _ := h.catalog.WishlistCount(c.Request.Context(), sess.UserID)
	c.JSON(http.StatusOK, gin.H{"message": "Removed from wishlist", "wishlist_count": count})
}

func queryFloat(c *gin.Context, key string) (float64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func paramID(c *gin.Context, key string) (int64, error) {
	return strconv.ParseInt(c.Param(key), 10, 64)
}
