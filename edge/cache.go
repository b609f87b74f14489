package edge

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ResourceClass selects which cache policy (and, for products, which
// fallback dataset) applies to a read.
type ResourceClass string

const (
	ClassProducts      ResourceClass = "products"
	ClassProductImages ResourceClass = "productImages"
	ClassHeroImages    ResourceClass = "heroImages"
	ClassOrders        ResourceClass = "orders"
)

// CachePolicy is the per-class cache lifetime pair. The table below is
// process-wide and never mutated.
type CachePolicy struct {
	MaxAge               time.Duration
	StaleWhileRevalidate time.Duration
}

var cachePolicies = map[ResourceClass]CachePolicy{
	ClassProducts:      {MaxAge: 5 * time.Minute, StaleWhileRevalidate: time.Minute},
	ClassProductImages: {MaxAge: 10 * time.Minute, StaleWhileRevalidate: 2 * time.Minute},
	ClassHeroImages:    {MaxAge: 15 * time.Minute, StaleWhileRevalidate: 5 * time.Minute},
	ClassOrders:        {MaxAge: 2 * time.Minute, StaleWhileRevalidate: 30 * time.Second},
}

func PolicyFor(class ResourceClass) CachePolicy {
	return cachePolicies[class]
}

// ApplyCacheHeaders attaches the general directive plus the two CDN mirrors.
// Fallback responses get the same headers as live ones: the edge tier is
// always cacheable, which keeps clients from hammering a failing backend.
func ApplyCacheHeaders(ctx *gin.Context, class ResourceClass) {
	policy := PolicyFor(class)
	maxAge := int(policy.MaxAge.Seconds())
	swr := int(policy.StaleWhileRevalidate.Seconds())

	ctx.Header("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d", maxAge, swr))
	ctx.Header("CDN-Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge))
	ctx.Header("Vercel-CDN-Cache-Control", fmt.Sprintf("public, max-age=%d", maxAge))
}

// CachedJSON writes data with the cache headers for class.
func CachedJSON(ctx *gin.Context, class ResourceClass, data any) {
	ApplyCacheHeaders(ctx, class)
	ctx.JSON(http.StatusOK, data)
}
