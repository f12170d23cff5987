package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/healthtracker/internal/service"
)

func PostReminder(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var req service.ReminderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.Validate(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		r, err := service.CreateReminder(c.Request.Context(), app.Store(), user, &req, app.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to save reminder")
			return
		}
		HandleCreated(c, app.Logger(), r)
	}
}

func GetDueReminders(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		due, err := service.DueReminders(c.Request.Context(), app.Store(), user, app.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch reminders")
			return
		}
		HandleSuccess(c, app.Logger(), due, map[string]any{"count": len(due)})
	}
}

func PostReminderAck(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		r, err := service.AckReminder(c.Request.Context(), app.Store(), user, c.Param("id"), app.Now())
		if err != nil {
			HandleServiceError(c, app.Logger(), err, "Failed to acknowledge reminder")
			return
		}
		HandleSuccess(c, app.Logger(), r, nil)
	}
}
