package controllers

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/davinevae-hub/PeriPath/app/models"
	"github.com/davinevae-hub/PeriPath/internal/pkg/flash"
	"github.com/davinevae-hub/PeriPath/internal/pkg/statistics"
)

// HandleInsights renders the rolling averages, trend, top symptoms and the
// 30-day chart.
func HandleInsights(c *fiber.Ctx) error {
	logs, err := logRepo().GetAll(c.UserContext())
	if err != nil {
		flash.Error(c, "Could not load insights: "+err.Error())
	}

	snap := statistics.CachedInsights(logs, time.Now())

	return c.Render("insights", fiber.Map{
		"Title":    models.GetAppSettings().GetSiteTitle(),
		"Insights": snap,
		"Chart":    buildChartPath(snap.Series, snap.ChartMax),
		"Flash":    flash.Get(c),
	}, "layouts/main")
}

// ChartView is the precomputed SVG geometry for the trend chart.
type ChartView struct {
	Width  int
	Height int
	Path   string
	Points []ChartPoint
	Grid   []float64
}

// ChartPoint is one plotted day.
type ChartPoint struct {
	X float64
	Y float64
}

// buildChartPath converts the sparse series into an SVG path, starting a new
// segment after every missing day so the line never interpolates across gaps.
func buildChartPath(series []statistics.SeriesPoint, max int) ChartView {
	const (
		w   = 860
		h   = 160
		pad = 18.0
	)
	view := ChartView{Width: w, Height: h}
	if len(series) < 2 || max <= 0 {
		return view
	}

	xs := func(i int) float64 {
		return pad + float64(i)*(w-pad*2)/float64(len(series)-1)
	}
	ys := func(v int) float64 {
		t := float64(v) / float64(max)
		return (h - pad) - t*(h-pad*2)
	}

	var path strings.Builder
	started := false
	for i, p := range series {
		if p.Score == nil {
			started = false
			continue
		}
		x, y := xs(i), ys(*p.Score)
		cmd := "M"
		if started {
			cmd = "L"
		}
		started = true
		fmt.Fprintf(&path, "%s %.2f %.2f ", cmd, x, y)
		view.Points = append(view.Points, ChartPoint{X: x, Y: y})
	}
	view.Path = path.String()

	for _, v := range []int{0, 10, 20, 30} {
		if v <= max {
			view.Grid = append(view.Grid, ys(v))
		}
	}
	return view
}
