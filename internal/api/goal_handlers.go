package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/healthtracker/internal/service"
)

func PostGoal(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var req service.GoalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid request: type, target and frequency required")
			return
		}

		if err := service.ValidateGoalRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Goal validation failed")
			return
		}

		goal, err := service.CreateGoal(c.Request.Context(), app.Store(), user, &req, app.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save goal")
			return
		}

		HandleCreated(c, app.Logger(), goal)
	}
}

func GetGoalProgress(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		progress, err := service.CalculateGoalProgress(c.Request.Context(), app.Store(), user, app.Now())
		if err != nil {
			HandleServiceError(c, app.Logger(), err, "Failed to compute goal progress")
			return
		}
		HandleSuccess(c, app.Logger(), progress, nil)
	}
}
