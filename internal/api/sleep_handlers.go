package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/healthtracker/internal/service"
)

func PostSleep(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var body service.SleepEntryRequest
		if err := c.ShouldBindJSON(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		app.Logger().Debugf("Parsed SleepEntryRequest: %+v", body)

		if err := service.Validate(&body); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		entry, err := service.CreateSleepEntry(c.Request.Context(), app.Store(), user, &body, app.Now())
		if err != nil {
			HandleServiceError(c, app.Logger(), err, "Failed to save entry")
			return
		}
		HandleCreated(c, app.Logger(), entry)
	}
}

func GetSleep(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		entries, err := app.Store().ListSleepEntries(c.Request.Context(), user.ID)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entries")
			return
		}
		HandleSuccess(c, app.Logger(), entries, map[string]any{"count": len(entries)})
	}
}

func GetSleepStats(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		days, err := queryInt(c, "days", service.DefaultWindowDays)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid query")
			return
		}
		stats, err := service.CalculateSleepStats(c.Request.Context(), app.Store(), user, app.Now(), days)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to fetch entries for stats")
			return
		}
		HandleSuccess(c, app.Logger(), stats, nil)
	}
}
