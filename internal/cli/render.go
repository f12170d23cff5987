package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yourname/healthtracker/internal/metrics"
)

var (
	colorBorder = lipgloss.Color("#575653")
	colorMuted  = lipgloss.Color("#878580")
	colorText   = lipgloss.Color("#FFFCF0")
	colorAccent = lipgloss.Color("#3AA99F")
	colorGreen  = lipgloss.Color("#879A39")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle = lipgloss.NewStyle().Foreground(colorMuted).Width(18)
	valueStyle = lipgloss.NewStyle().Foreground(colorText)
	doneStyle  = lipgloss.NewStyle().Foreground(colorGreen)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
)

// section renders label/value rows under a title inside a rounded box.
func section(title string, rows [][2]string) string {
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, titleStyle.Render(title))
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r[0]), valueStyle.Render(r[1])))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func pct(v float64) string {
	return num(v) + "%"
}

func renderActivities(acts []metrics.Activity) string {
	rows := make([][2]string, 0, len(acts))
	for _, a := range acts {
		rows = append(rows, [2]string{a.Name, num(a.MET)})
	}
	return section("Activities (MET)", rows)
}

func renderDashboard(d metrics.Dashboard) string {
	today := section("Today", [][2]string{
		{"Steps", strconv.Itoa(d.Today.Steps)},
		{"Workouts", strconv.Itoa(d.Today.Workouts)},
		{"Burned (kcal)", num(d.Today.CaloriesBurned)},
		{"Eaten (kcal)", num(d.CaloriesConsumed)},
		{"Water (ml)", fmt.Sprintf("%s of %s (%s)", num(d.Hydration.TodayML), num(d.Hydration.GoalML), pct(d.Hydration.TodayPercent))},
	})
	week := section("Last 7 days", [][2]string{
		{"Steps", strconv.Itoa(d.Week.Steps)},
		{"Avg steps/day", num(d.Week.AverageSteps)},
		{"Sleep score", fmt.Sprintf("%d (%s)", d.Sleep.Score, d.Sleep.Quality)},
		{"Consistency", strconv.Itoa(d.Sleep.Consistency) + "%"},
		{"Mood", fmt.Sprintf("%s / %s", d.Mood.MoodLabel, d.Mood.StressLabel)},
	})

	g := d.Gamification
	rows := [][2]string{
		{"Points", strconv.Itoa(g.Points)},
		{"Level", fmt.Sprintf("%d (%d/%d xp)", g.Level, g.XPInLevel, g.XPInLevel+g.XPToNextLevel)},
		{"Streak", strconv.Itoa(g.Streak)},
		{"Badges", strings.Join(g.Badges, ", ")},
	}
	for _, c := range g.Challenges {
		status := num(c.Progress) + "/" + num(c.Target)
		if c.Completed {
			status = doneStyle.Render("done")
		}
		rows = append(rows, [2]string{c.Name, status})
	}
	progress := section("Progress", rows)

	blocks := []string{today, week, progress}
	if len(d.Goals) > 0 {
		goalRows := make([][2]string, 0, len(d.Goals))
		for _, gp := range d.Goals {
			label := fmt.Sprintf("%s %s", gp.Goal.Frequency, gp.Goal.Type)
			goalRows = append(goalRows, [2]string{label, fmt.Sprintf("%s/%d (%s)", num(gp.Actual), gp.Goal.Target, pct(gp.Percent))})
		}
		blocks = append(blocks, section("Goals", goalRows))
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
