package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the DopeTech storefront API.

The following are the endpoints for this API:

PRODUCTS
- GET "/api/products" - List all products
- POST "/api/products" - Create a product
- PUT "/api/products" - Update a product by id
- DELETE "/api/products?id=" - Delete a product (images removed first)

PRODUCT IMAGES
- GET "/api/product-images?productId=" - List a product's images
- POST "/api/product-images" - Upload a product image (multipart)

HERO IMAGES
- GET "/api/hero-images" - List active hero banners
- POST "/api/hero-images/upload" - Upload a hero banner (multipart)

ORDERS
- GET "/api/orders" - List orders (or one with ?orderId=)
- POST "/api/orders" - Create an order
- PATCH "/api/orders" - Update an order's status

QR CODES / ASSETS / STORAGE
- GET, POST "/api/qr-codes"
- GET, POST "/api/assets"
- GET, POST, DELETE "/api/storage/product-images"
- GET, POST, DELETE "/api/storage/qr-codes"

EDGE (cached reads with fallback)
- GET "/api/edge/products"
- GET "/api/edge/products/:id"
- GET "/api/edge/products/category/:category"
- GET "/api/edge/products/dope-picks?count="
- GET "/api/edge/products/weekly-picks?count="
- GET "/api/edge/products/with-images"
- GET "/api/edge/product-images?productId="
- GET "/api/edge/hero-images"`

	ctx.JSON(http.StatusOK, gin.H{"message": message})
}
