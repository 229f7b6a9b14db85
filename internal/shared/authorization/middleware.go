package authorization

import (
	"github.com/gin-gonic/gin"
)

// RequireStaff gates case-review endpoints to staff and admin accounts.
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := ParseUserRole(c.GetString("user_role"))
		if !role.CanReviewCases() {
			c.JSON(403, gin.H{
				"error": "staff access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func CanAccessCaseByOwnerID(userID uint, role UserRole, ownerID uint) bool {
	if role.CanReviewCases() {
		return true
	}
	return userID == ownerID
}
