package httpserver

import (
	"github.com/gin-gonic/gin"

	"github.com/niteshram69/mind-ai-forge/internal/token"
)

const claimsKey = "maf.claims"

// setClaims stores verified session claims on the in-flight request.
func setClaims(c *gin.Context, claims *token.Claims) {
	c.Set(claimsKey, claims)
}

// claimsFromCtx fetches the claims attached by RequireAuth.
func claimsFromCtx(c *gin.Context) (*token.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*token.Claims)
	return claims, ok
}
