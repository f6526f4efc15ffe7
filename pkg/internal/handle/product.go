package handle

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/greengivers/nursery/pkg/internal/storage/catalog"
	"github.com/greengivers/nursery/pkg/internal/types"
	"github.com/greengivers/nursery/pkg/log"
)

// ListProducts returns products matching the query filters. Active-only
// unless isActive is given explicitly.
func ListProducts(c *gin.Context) {
	filter := catalog.Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("isActive"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Success: false,
				Message: "isActive must be true or false",
			})

			return
		}
		filter.IsActive = &active
	}

	products, err := productService(c).List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ListResponse{Success: true, Count: len(products), Data: products})
}

// GetProductsByCategory returns the active products of one category.
func GetProductsByCategory(c *gin.Context) {
	products, err := productService(c).ListByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.ListResponse{Success: true, Count: len(products), Data: products})
}

// GetProductStats returns the live catalog aggregates.
func GetProductStats(c *gin.Context) {
	stats, err := productService(c).Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{Success: true, Data: stats})
}

// GetProduct returns a single product by id.
func GetProduct(c *gin.Context) {
	product, err := productService(c).Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{Success: true, Data: product})
}

// CreateProduct validates and stores a new product.
func CreateProduct(c *gin.Context) {
	var req types.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Errors:  []string{err.Error()},
		})

		return
	}

	product, err := productService(c).Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	log.Logger().Info().Str("id", product.ID).Str("name", product.Name).Msg("product created")
	c.JSON(http.StatusCreated, types.MessageResponse{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// UpdateProduct replaces an existing product wholesale.
func UpdateProduct(c *gin.Context) {
	var req types.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{
			Success: false,
			Message: "Invalid request body",
			Errors:  []string{err.Error()},
		})

		return
	}

	product, err := productService(c).Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.MessageResponse{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct removes a product and echoes the removed record.
func DeleteProduct(c *gin.Context) {
	product, err := productService(c).Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	log.Logger().Info().Str("id", product.ID).Str("name", product.Name).Msg("product deleted")
	c.JSON(http.StatusOK, types.MessageResponse{
		Success: true,
		Message: "Product deleted successfully",
		Data:    product,
	})
}
