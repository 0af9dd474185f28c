package components

import (
	"fmt"
	"strings"
	"time"
)

var blocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders data as a row of block characters, right-aligned to
// width. The newest value is the rightmost cell.
func Sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return strings.Repeat(" ", width)
	}
	if len(data) > width {
		data = data[len(data)-width:]
	}
	min, max := data[0], data[0]
	for _, v := range data {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	var sb strings.Builder
	for i := 0; i < width-len(data); i++ {
		sb.WriteRune(' ')
	}
	spread := max - min
	for _, v := range data {
		if spread == 0 {
			sb.WriteRune(blocks[3])
			continue
		}
		idx := int((v - min) / spread * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		sb.WriteRune(blocks[idx])
	}
	return sb.String()
}

// FormatRate renders a bits-per-second figure in compact SI units.
func FormatRate(bps float64) string {
	if bps == 0 {
		return "0"
	}
	switch {
	case bps >= 1_000_000_000_000:
		return fmt.Sprintf("%.1fT", bps/1_000_000_000_000)
	case bps >= 1_000_000_000:
		return fmt.Sprintf("%.1fG", bps/1_000_000_000)
	case bps >= 1_000_000:
		return fmt.Sprintf("%.1fM", bps/1_000_000)
	case bps >= 1_000:
		return fmt.Sprintf("%.1fK", bps/1_000)
	default:
		return fmt.Sprintf("%.0fb", bps)
	}
}

// FormatPct renders a percentage with one decimal.
func FormatPct(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatAgo renders how long ago t was, for the access columns. A zero
// time renders as a dash.
func FormatAgo(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
