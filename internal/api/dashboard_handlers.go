package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/healthtracker/internal/service"
)

// GetDashboard takes the current streak from ?streak=, since streaks are
// tracked by the client.
func GetDashboard(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		streak, err := queryInt(c, "streak", 0)
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid query")
			return
		}
		d, err := service.BuildDashboard(c.Request.Context(), app.Store(), user, app.Now(), streak, app.WaterGoalML())
		if err != nil {
			HandleError(c, app.Logger(), err, 500, "Failed to build dashboard")
			return
		}
		HandleSuccess(c, app.Logger(), d, nil)
	}
}
