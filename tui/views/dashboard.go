package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tonhe/slant/internal/config"
	"github.com/tonhe/slant/internal/engine"
	"github.com/tonhe/slant/tui/components"
	"github.com/tonhe/slant/tui/keys"
	"github.com/tonhe/slant/tui/styles"
)

// Column width constants (minimum widths).
const (
	colHost     = 22
	colValue    = 10
	colLink     = 14
	colSparkMin = 12
)

// timeWindows maps the layout's time-window options to the history span
// each one averages over, in column order.
var timeWindows = []struct {
	arg   config.Arg
	label string
	span  time.Duration
}{
	{config.ArgQmin, "15m", 15 * time.Minute},
	{config.ArgMin, "1m", time.Minute},
	{config.ArgHour, "1h", time.Hour},
	{config.ArgDay, "1d", 24 * time.Hour},
	{config.ArgWeek, "1w", 7 * 24 * time.Hour},
	{config.ArgYear, "1y", 365 * 24 * time.Hour},
}

// DashboardView draws the configured layout: one section per box, one row
// per host, plus the error log tail when the layout reserves lines for it.
type DashboardView struct {
	theme    styles.Theme
	sty      *styles.Styles
	layout   *config.Layout
	snapshot *engine.Snapshot
	offset   int // scroll offset in rendered lines
	width    int
	height   int
}

// NewDashboardView creates a DashboardView drawing the given layout. A nil
// layout falls back to the default.
func NewDashboardView(theme styles.Theme, layout *config.Layout) DashboardView {
	if layout == nil {
		layout = config.DefaultLayout()
	}
	return DashboardView{
		theme:  theme,
		sty:    styles.NewStyles(theme),
		layout: layout,
	}
}

// Update handles key messages for scrolling within the dashboard.
func (v DashboardView) Update(msg tea.Msg) (DashboardView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.DefaultKeyMap.Up):
			if v.offset > 0 {
				v.offset--
			}
		case key.Matches(msg, keys.DefaultKeyMap.Down):
			v.offset++
		}
	}
	return v, nil
}

// SetSnapshot updates the dashboard data.
func (v *DashboardView) SetSnapshot(snap *engine.Snapshot) {
	v.snapshot = snap
}

// SetSize updates the available dimensions for the view.
func (v *DashboardView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// View renders the dashboard.
func (v DashboardView) View() string {
	if v.snapshot == nil || len(v.snapshot.Hosts) == 0 {
		return v.renderEmpty()
	}

	var lines []string
	for _, box := range v.layout.Boxes {
		lines = append(lines, v.renderBox(box)...)
		lines = append(lines, "")
	}
	if v.layout.Errlog > 0 {
		lines = append(lines, v.renderErrlog()...)
	}
	// Trim the trailing blank separator.
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	// Apply vertical scrolling.
	offset := v.offset
	if max := len(lines) - v.height; offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + v.height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}

// renderBox dispatches on the box category.
func (v DashboardView) renderBox(box config.DrawBox) []string {
	switch box.Cat {
	case config.CatCPU:
		return v.renderGaugeBox(box, func(s engine.HostSample) (float64, bool) {
			return s.CPUPct, s.HasCPU
		})
	case config.CatMem:
		return v.renderGaugeBox(box, func(s engine.HostSample) (float64, bool) {
			return s.MemPct, s.HasMem
		})
	case config.CatDisc:
		return v.renderGaugeBox(box, func(s engine.HostSample) (float64, bool) {
			return s.DiscPct, s.HasDisc
		})
	case config.CatProcs:
		return v.renderGaugeBox(box, func(s engine.HostSample) (float64, bool) {
			return s.ProcsPct, s.HasProcs
		})
	case config.CatRProcs:
		return v.renderCountBox(box, func(s engine.HostSample) (int, bool) {
			return s.Procs, s.HasProcs
		})
	case config.CatFiles:
		return v.renderCountBox(box, func(s engine.HostSample) (int, bool) {
			return s.Files, s.HasFiles
		})
	case config.CatNet:
		return v.renderNetBox(box)
	case config.CatLink:
		return v.renderLinkBox(box)
	case config.CatHost:
		return v.renderHostBox(box)
	}
	return nil
}

// boxHeader renders the section title plus the column header row shared by
// the metric boxes.
func (v DashboardView) boxHeader(box config.DrawBox) []string {
	title := v.sty.BoxTitle.Render(strings.ToUpper(box.Cat.String()))

	head := v.sty.ColumnHead.Render(padRight("host", colHost))
	for _, w := range timeWindows {
		if box.Has(w.arg) {
			head += v.sty.ColumnHead.Render(padLeft(w.label, colValue))
		}
	}
	if box.Has(config.ArgQminBars) {
		head += v.sty.ColumnHead.Render("  " + padRight("trend", v.sparkWidth(box)))
	}
	return []string{title, head}
}

// sparkWidth is the width left over for the qmin_bars sparkline column.
func (v DashboardView) sparkWidth(box config.DrawBox) int {
	fixed := colHost
	for _, w := range timeWindows {
		if box.Has(w.arg) {
			fixed += colValue
		}
	}
	spark := v.width - fixed - 2
	if spark < colSparkMin {
		spark = colSparkMin
	}
	return spark
}

// renderGaugeBox renders a percent-valued box with threshold coloring.
func (v DashboardView) renderGaugeBox(box config.DrawBox, metric func(engine.HostSample) (float64, bool)) []string {
	lines := v.boxHeader(box)
	for _, h := range v.snapshot.Hosts {
		row := v.sty.Row.Render(padRight(truncate(h.URL, colHost-1), colHost))
		for _, w := range timeWindows {
			if !box.Has(w.arg) {
				continue
			}
			avg, ok := avgWindow(h, w.span, metric)
			if !ok {
				row += v.sty.RowDim.Render(padLeft("--", colValue))
				continue
			}
			row += v.gaugeStyle(avg).Render(padLeft(components.FormatPct(avg), colValue))
		}
		if box.Has(config.ArgQminBars) {
			width := v.sparkWidth(box)
			spark := components.Sparkline(sparkData(h, metric), width)
			row += "  " + v.sty.Sparkline.Render(spark)
		}
		lines = append(lines, row)
	}
	return lines
}

// renderCountBox renders an integer-valued box (running procs, open files).
func (v DashboardView) renderCountBox(box config.DrawBox, metric func(engine.HostSample) (int, bool)) []string {
	asFloat := func(s engine.HostSample) (float64, bool) {
		n, ok := metric(s)
		return float64(n), ok
	}
	lines := v.boxHeader(box)
	for _, h := range v.snapshot.Hosts {
		row := v.sty.Row.Render(padRight(truncate(h.URL, colHost-1), colHost))
		for _, w := range timeWindows {
			if !box.Has(w.arg) {
				continue
			}
			avg, ok := avgWindow(h, w.span, asFloat)
			if !ok {
				row += v.sty.RowDim.Render(padLeft("--", colValue))
				continue
			}
			row += v.sty.Row.Render(padLeft(fmt.Sprintf("%.0f", avg), colValue))
		}
		if box.Has(config.ArgQminBars) {
			width := v.sparkWidth(box)
			spark := components.Sparkline(sparkData(h, asFloat), width)
			row += "  " + v.sty.Sparkline.Render(spark)
		}
		lines = append(lines, row)
	}
	return lines
}

// renderNetBox renders throughput cells as "in/out" rate pairs.
func (v DashboardView) renderNetBox(box config.DrawBox) []string {
	inBps := func(s engine.HostSample) (float64, bool) { return s.NetInBps, s.HasNet }
	outBps := func(s engine.HostSample) (float64, bool) { return s.NetOutBps, s.HasNet }

	title := v.sty.BoxTitle.Render("NET")
	head := v.sty.ColumnHead.Render(padRight("host", colHost))
	for _, w := range timeWindows {
		if box.Has(w.arg) {
			head += v.sty.ColumnHead.Render(padLeft(w.label+" rx/tx", colValue+colValue/2))
		}
	}
	if box.Has(config.ArgQminBars) {
		head += v.sty.ColumnHead.Render("  " + padRight("trend", v.netSparkWidth(box)))
	}
	lines := []string{title, head}

	for _, h := range v.snapshot.Hosts {
		row := v.sty.Row.Render(padRight(truncate(h.URL, colHost-1), colHost))
		for _, w := range timeWindows {
			if !box.Has(w.arg) {
				continue
			}
			in, okIn := avgWindow(h, w.span, inBps)
			out, okOut := avgWindow(h, w.span, outBps)
			if !okIn && !okOut {
				row += v.sty.RowDim.Render(padLeft("--", colValue+colValue/2))
				continue
			}
			cell := components.FormatRate(in) + "/" + components.FormatRate(out)
			row += v.sty.Row.Render(padLeft(cell, colValue+colValue/2))
		}
		if box.Has(config.ArgQminBars) {
			width := v.netSparkWidth(box)
			data := sparkData(h, func(s engine.HostSample) (float64, bool) {
				rate := s.NetInBps
				if s.NetOutBps > rate {
					rate = s.NetOutBps
				}
				return rate, s.HasNet
			})
			row += "  " + v.sty.Sparkline.Render(components.Sparkline(data, width))
		}
		lines = append(lines, row)
	}
	return lines
}

func (v DashboardView) netSparkWidth(box config.DrawBox) int {
	fixed := colHost
	for _, w := range timeWindows {
		if box.Has(w.arg) {
			fixed += colValue + colValue/2
		}
	}
	spark := v.width - fixed - 2
	if spark < colSparkMin {
		spark = colSparkMin
	}
	return spark
}

// renderLinkBox renders one row per host interface with the optional ip,
// state, and access columns.
func (v DashboardView) renderLinkBox(box config.DrawBox) []string {
	title := v.sty.BoxTitle.Render("LINK")
	head := v.sty.ColumnHead.Render(padRight("host", colHost)) +
		v.sty.ColumnHead.Render(padRight("link", colLink))
	if box.Has(config.ArgIP) {
		head += v.sty.ColumnHead.Render(padRight("ip", 16))
	}
	if box.Has(config.ArgState) {
		head += v.sty.ColumnHead.Render(padRight("state", 7))
	}
	if box.Has(config.ArgAccess) {
		head += v.sty.ColumnHead.Render(padLeft("seen", 8))
	}
	lines := []string{title, head}

	for _, h := range v.snapshot.Hosts {
		last, ok := h.History.Last()
		if !ok || len(last.Links) == 0 {
			row := v.sty.Row.Render(padRight(truncate(h.URL, colHost-1), colHost)) +
				v.sty.RowDim.Render("--")
			lines = append(lines, row)
			continue
		}
		for i, link := range last.Links {
			hostCell := ""
			if i == 0 {
				hostCell = truncate(h.URL, colHost-1)
			}
			row := v.sty.Row.Render(padRight(hostCell, colHost)) +
				v.sty.Row.Render(padRight(truncate(link.Name, colLink-1), colLink))
			if box.Has(config.ArgIP) {
				addr := link.Addr
				if addr == "" {
					addr = "--"
				}
				row += v.sty.RowDim.Render(padRight(addr, 16))
			}
			if box.Has(config.ArgState) {
				if link.Up {
					row += v.sty.StatusUp.Render(padRight("up", 7))
				} else {
					row += v.sty.StatusDown.Render(padRight("down", 7))
				}
			}
			if box.Has(config.ArgAccess) {
				row += v.sty.RowDim.Render(padLeft(components.FormatAgo(h.LastSeen), 8))
			}
			lines = append(lines, row)
		}
	}
	return lines
}

// renderHostBox renders host identity rows: address, reachability, uptime,
// and last-contact time when the access option is set.
func (v DashboardView) renderHostBox(box config.DrawBox) []string {
	title := v.sty.BoxTitle.Render("HOST")
	head := v.sty.ColumnHead.Render(padRight("host", colHost)) +
		v.sty.ColumnHead.Render(padRight("state", 7)) +
		v.sty.ColumnHead.Render(padLeft("uptime", 10))
	if box.Has(config.ArgAccess) {
		head += v.sty.ColumnHead.Render(padLeft("seen", 8))
	}
	lines := []string{title, head}

	for _, h := range v.snapshot.Hosts {
		row := v.sty.Row.Render(padRight(truncate(h.URL, colHost-1), colHost))
		if h.PollError != nil {
			row += v.sty.StatusDown.Render(padRight("down", 7))
		} else if h.LastSeen.IsZero() {
			row += v.sty.StatusWarn.Render(padRight("wait", 7))
		} else {
			row += v.sty.StatusUp.Render(padRight("up", 7))
		}
		uptime := "--"
		if last, ok := h.History.Last(); ok && last.Uptime > 0 {
			uptime = formatUptime(last.Uptime)
		}
		row += v.sty.Row.Render(padLeft(uptime, 10))
		if box.Has(config.ArgAccess) {
			row += v.sty.RowDim.Render(padLeft(components.FormatAgo(h.LastSeen), 8))
		}
		lines = append(lines, row)
	}
	return lines
}

// renderErrlog renders the newest poll errors, newest last, capped at the
// layout's errlog line count.
func (v DashboardView) renderErrlog() []string {
	title := v.sty.BoxTitle.Render("ERRORS")
	lines := []string{title}
	errs := v.snapshot.Errors
	if len(errs) > v.layout.Errlog {
		errs = errs[len(errs)-v.layout.Errlog:]
	}
	if len(errs) == 0 {
		lines = append(lines, v.sty.RowDim.Render("none"))
		return lines
	}
	for _, e := range errs {
		lines = append(lines, v.sty.Errlog.Render(fmt.Sprintf(
			"%s %s: %v", e.Time.Format("15:04:05"), e.Host, e.Err,
		)))
	}
	return lines
}

// renderEmpty renders a centered message when no hosts are being polled.
func (v DashboardView) renderEmpty() string {
	msgStyle := lipgloss.NewStyle().
		Foreground(v.theme.Base04).
		Align(lipgloss.Center)

	msg := lipgloss.JoinVertical(lipgloss.Center,
		"",
		msgStyle.Render("No hosts configured"),
		"",
		msgStyle.Render("Add a servers statement to the configuration"),
		msgStyle.Render("or pass hosts on the command line"),
		"",
	)
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, msg)
}

// gaugeStyle picks the threshold color for a percent value.
func (v DashboardView) gaugeStyle(pct float64) lipgloss.Style {
	switch {
	case pct >= 80:
		return v.sty.GaugeHigh
	case pct >= 50:
		return v.sty.GaugeMid
	default:
		return v.sty.GaugeLow
	}
}

// avgWindow averages a metric over the samples within span of the newest
// poll. Samples where the host did not report the metric are skipped.
func avgWindow(h engine.HostStats, span time.Duration, metric func(engine.HostSample) (float64, bool)) (float64, bool) {
	if h.History == nil {
		return 0, false
	}
	samples := engine.Window(h.History, span, func(s engine.HostSample) time.Time {
		return s.Timestamp
	})
	var sum float64
	var n int
	for _, s := range samples {
		if v, ok := metric(s); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// sparkData pulls the last quarter hour of a metric for the qmin_bars
// sparkline.
func sparkData(h engine.HostStats, metric func(engine.HostSample) (float64, bool)) []float64 {
	if h.History == nil {
		return nil
	}
	samples := engine.Window(h.History, 15*time.Minute, func(s engine.HostSample) time.Time {
		return s.Timestamp
	})
	var data []float64
	for _, s := range samples {
		if v, ok := metric(s); ok {
			data = append(data, v)
		}
	}
	return data
}

// formatUptime renders an uptime duration in the largest sensible unit.
func formatUptime(d time.Duration) string {
	switch {
	case d >= 24*time.Hour:
		return fmt.Sprintf("%dd%dh", int(d.Hours())/24, int(d.Hours())%24)
	case d >= time.Hour:
		return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
	default:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
}

// padRight pads s with spaces on the right to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads s with spaces on the left to the given width.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// truncate shortens s to maxLen characters, adding an ellipsis if needed.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
