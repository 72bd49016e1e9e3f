package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vahanbazar/internal/utils"
)

// Claims carried in access tokens. Role flags ride along so role gates do not
// need a user lookup per request.
type Claims struct {
	UserID    string `json:"user_id"`
	IsDealer  bool   `json:"is_dealer"`
	IsManager bool   `json:"is_manager"`
	jwt.RegisteredClaims
}

// AuthRequired validates the bearer token and stores the caller's identity on
// the request context.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			utils.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("is_dealer", claims.IsDealer)
		c.Set("is_manager", claims.IsManager)
		c.Next()
	}
}

// DealerRequired gates dealer portal endpoints. AuthRequired must run first.
func DealerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_dealer") {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// ManagerRequired gates moderation endpoints. AuthRequired must run first.
func ManagerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_manager") {
			utils.ForbiddenResponse(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
