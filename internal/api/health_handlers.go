package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/healthtracker/internal/service"
)

func PostHealth(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var req service.HealthEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.Validate(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		entry, err := service.CreateHealthEntry(c.Request.Context(), app.Store(), user, &req, app.Now())
		if err != nil {
			HandleServiceError(c, app.Logger(), err, "Failed to save entry")
			return
		}
		HandleCreated(c, app.Logger(), entry)
	}
}

func GetHealth(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		entries, err := app.Store().ListHealthEntries(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entries")
			return
		}
		HandleSuccess(c, app.Logger(), entries, map[string]any{"count": len(entries)})
	}
}

func DeleteHealth(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if err := app.Store().DeleteHealthEntry(c.Request.Context(), user.ID, c.Param("id")); err != nil {
			HandleServiceError(c, app.Logger(), err, "Failed to delete entry")
			return
		}
		HandleSuccess(c, app.Logger(), gin.H{"id": c.Param("id")}, nil)
	}
}
