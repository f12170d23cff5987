package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/healthtracker/internal/service"
)

func PostWater(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var req service.WaterEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.Validate(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		entry, err := service.CreateWaterEntry(c.Request.Context(), app.Store(), user, &req, app.Now())
		if err != nil {
			HandleServiceError(c, app.Logger(), err, "Failed to save entry")
			return
		}
		HandleCreated(c, app.Logger(), entry)
	}
}

func GetWaterSummary(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		summary, err := service.CalculateHydration(c.Request.Context(), app.Store(), user, app.Now(), app.WaterGoalML())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to summarize water intake")
			return
		}
		HandleSuccess(c, app.Logger(), summary, nil)
	}
}

func PostMood(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var req service.MoodEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.Validate(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		entry, err := service.CreateMoodEntry(c.Request.Context(), app.Store(), user, &req, app.Now())
		if err != nil {
			HandleServiceError(c, app.Logger(), err, "Failed to save entry")
			return
		}
		HandleCreated(c, app.Logger(), entry)
	}
}

func GetMoodSummary(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		days, err := queryInt(c, "days", service.DefaultWindowDays)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid query")
			return
		}
		summary, err := service.CalculateMood(c.Request.Context(), app.Store(), user, app.Now(), days)
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to summarize mood")
			return
		}
		HandleSuccess(c, app.Logger(), summary, nil)
	}
}

func PostMeal(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var req service.MealRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.Validate(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		meal, err := service.CreateMeal(c.Request.Context(), app.Store(), user, &req, app.Now())
		if err != nil {
			HandleServiceError(c, app.Logger(), err, "Failed to save meal")
			return
		}
		HandleCreated(c, app.Logger(), meal)
	}
}

func PostJournal(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var req service.JournalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid JSON")
			return
		}
		if err := service.Validate(&req); err != nil {
			HandleError(c, app.Logger(), err, 400, "Validation failed")
			return
		}

		entry, err := service.CreateJournalEntry(c.Request.Context(), app.Store(), user, &req, app.Now())
		if err != nil {
			HandleServiceError(c, app.Logger(), err, "Failed to save journal entry")
			return
		}
		HandleCreated(c, app.Logger(), entry)
	}
}
