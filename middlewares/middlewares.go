package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"github.com/rushikeshbylinelearning/HRMS-sub005/config"
	"github.com/rushikeshbylinelearning/HRMS-sub005/models"
)

// AuthMiddleware validates the Bearer token and loads the employee (with
// their shift) into the request context as "currentUser".
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "please log in first"})
			return
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "please log in first"})
			return
		}

		claims := &config.JWTClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.NewValidationError("invalid signing method", jwt.ValidationErrorSignatureInvalid)
			}
			return config.JWT_KEY, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token is invalid or expired"})
			return
		}

		var employee models.Employee
		if err := db.Preload("Shift").First(&employee, claims.EmployeeId).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "employee not found"})
			return
		}
		if !employee.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "account is inactive"})
			return
		}

		c.Set("currentUser", employee)
		c.Next()
	}
}

// CurrentEmployee pulls the authenticated employee out of the context.
func CurrentEmployee(c *gin.Context) (models.Employee, bool) {
	userData, exists := c.Get("currentUser")
	if !exists {
		return models.Employee{}, false
	}
	emp, ok := userData.(models.Employee)
	return emp, ok
}
