package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/healthtracker/internal/metrics"
	"github.com/yourname/healthtracker/internal/service"
)

func PostExercise(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var req service.ExerciseRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.Validate(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		entry, err := service.CreateExercise(c.Request.Context(), app.Store(), user, &req, app.Now())
		if err != nil {
			HandleServiceError(c, app.Logger(), err, "Failed to save exercise")
			return
		}
		HandleCreated(c, app.Logger(), entry)
	}
}

func GetExercises(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		entries, err := app.Store().ListExercises(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch exercises")
			return
		}
		HandleSuccess(c, app.Logger(), entries, map[string]any{"count": len(entries)})
	}
}

func GetActivities(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), metrics.Activities(), nil)
	}
}
