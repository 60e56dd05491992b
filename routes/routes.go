package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all resource route
// groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	SetupUserRoutes(r, db)
	SetupProductRoutes(r, db)
	SetupOrderRoutes(r, db)
}
