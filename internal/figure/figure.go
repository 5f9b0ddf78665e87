package figure

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"drift/internal/domain"
	"drift/internal/util/unit"
)

const (
	figWidth    = 8 * vg.Inch
	panelHeight = 1.3 * vg.Inch
)

// series is one panel of a stacked figure.
type series struct {
	label string
	dt    float64
	ys    []float64
	color color.Color
}

// Accelerations draws the ground record above every floor's relative
// acceleration and writes the figure to path.
func Accelerations(res *domain.RunResult, path string) error {
	h := res.History

	rows := make([]series, 0, h.Stories()+1)
	rows = append(rows, series{
		label: fmt.Sprintf("Ground (peak %.2f m/s²)", res.Motion.PGA()),
		dt:    res.Motion.DT,
		ys:    res.Motion.Scaled(),
		color: color.Black,
	})
	for s := 0; s < h.Stories(); s++ {
		rows = append(rows, series{
			label: fmt.Sprintf("Floor %d (peak %.2f m/s²)", s+1, domain.SignedPeak(h.Accel[s])),
			dt:    h.DT,
			ys:    h.Accel[s],
			color: plotutil.Color(s),
		})
	}
	return stack("Relative Accelerations", "Time [s]", "Acceleration [m/s²]", h.Duration(), rows, path)
}

// Displacements draws every floor's relative displacement in millimetres and
// writes the figure to path.
func Displacements(res *domain.RunResult, path string) error {
	h := res.History

	rows := make([]series, 0, h.Stories())
	for s := 0; s < h.Stories(); s++ {
		mm := make([]float64, len(h.Disp[s]))
		for i, v := range h.Disp[s] {
			mm[i] = unit.ToMM(v)
		}
		rows = append(rows, series{
			label: fmt.Sprintf("Floor %d (peak %.2f mm)", s+1, domain.SignedPeak(mm)),
			dt:    h.DT,
			ys:    mm,
			color: plotutil.Color(s),
		})
	}
	return stack("Relative Displacements", "Time [s]", "Displacement [mm]", h.Duration(), rows, path)
}

// stack renders rows as vertically tiled panels sharing the time axis and a
// symmetric vertical range wide enough for every series.
func stack(title, xlabel, ylabel string, xmax float64, rows []series, path string) error {
	if len(rows) == 0 {
		return fmt.Errorf("figure %s: no series", path)
	}

	limit := 0.0
	for _, r := range rows {
		limit = math.Max(limit, math.Abs(domain.SignedPeak(r.ys)))
	}
	if limit == 0 {
		limit = 1
	}
	limit *= 1.1

	plots := make([][]*plot.Plot, len(rows))
	for i, r := range rows {
		p := plot.New()
		p.X.Min, p.X.Max = 0, xmax
		p.Y.Min, p.Y.Max = -limit, limit
		p.X.Tick.Marker = stepTicks{step: niceStep(xmax)}
		p.Add(plotter.NewGrid())

		line, err := plotter.NewLine(sampled(r.dt, r.ys))
		if err != nil {
			return fmt.Errorf("figure %s: %w", path, err)
		}
		line.Color = r.color
		p.Add(line)
		p.Legend.Add(r.label, line)
		p.Legend.Top = true

		if i == 0 {
			p.Title.Text = title
		}
		if i == len(rows)-1 {
			p.X.Label.Text = xlabel
		}
		if i == len(rows)/2 {
			p.Y.Label.Text = ylabel
		}

		plots[i] = []*plot.Plot{p}
	}

	img := vgimg.New(figWidth, vg.Length(len(rows))*panelHeight)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: len(rows), Cols: 1,
		PadY: vg.Millimeter * 2,
		PadX: vg.Millimeter,
	}
	canvases := plot.Align(plots, tiles, dc)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create figure %s: %w", path, err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write figure %s: %w", path, err)
	}
	return f.Close()
}

// sampled places ys on a uniform time grid starting at zero.
func sampled(dt float64, ys []float64) plotter.XYs {
	xys := make(plotter.XYs, len(ys))
	for i, y := range ys {
		xys[i] = plotter.XY{X: float64(i) * dt, Y: y}
	}
	return xys
}

// stepTicks places major ticks every step along the axis.
type stepTicks struct {
	step float64
}

func (s stepTicks) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	start := math.Ceil(min/s.step) * s.step
	for k := 0; ; k++ {
		v := start + float64(k)*s.step
		if v > max+s.step/1e6 {
			break
		}
		ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf("%.6g", v)})
	}
	return ticks
}

// niceStep returns a 1-2-5 series step dividing span into a handful of
// intervals.
func niceStep(span float64) float64 {
	if span <= 0 {
		return 1
	}
	raw := span / 7
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch {
	case raw/mag >= 5:
		return 5 * mag
	case raw/mag >= 2:
		return 2 * mag
	default:
		return mag
	}
}
