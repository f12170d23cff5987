package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourname/healthtracker/internal/auth"
)

func NewRouter(app App, provider auth.Provider) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestIDMiddleware(), LoggingMiddleware(app.Logger()))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	g := r.Group("/api", auth.AuthMiddleware(provider, app.Logger()))
	g.POST("/health", PostHealth(app))
	g.GET("/health", GetHealth(app))
	g.DELETE("/health/:id", DeleteHealth(app))

	g.POST("/exercise", PostExercise(app))
	g.GET("/exercise", GetExercises(app))
	g.GET("/exercise/activities", GetActivities(app))

	g.POST("/sleep", PostSleep(app))
	g.GET("/sleep", GetSleep(app))
	g.GET("/sleep/stats", GetSleepStats(app))

	g.POST("/water", PostWater(app))
	g.GET("/water/summary", GetWaterSummary(app))

	g.POST("/mood", PostMood(app))
	g.GET("/mood/summary", GetMoodSummary(app))

	g.POST("/meals", PostMeal(app))
	g.POST("/journal", PostJournal(app))

	g.POST("/goals", PostGoal(app))
	g.GET("/goals/progress", GetGoalProgress(app))

	g.POST("/reminders", PostReminder(app))
	g.GET("/reminders/due", GetDueReminders(app))
	g.POST("/reminders/:id/ack", PostReminderAck(app))

	g.GET("/dashboard", GetDashboard(app))

	return r
}
