package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/planbook/planbook/pkg/app"
)

const barWidth = 10

// Week renders the seven-day completion overview.
func (pp *PrettyPrint) Week(days []app.WeekDay) {
	if len(days) == 0 {
		pp.none()
		return
	}
	pp.Title(fmt.Sprintf("Week of %s", days[0].Label))

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, d := range days {
		tbl.AddRow(d.Name, faint(string(d.Key)), bar(d.Completion), fmt.Sprintf("%3d%%", d.Completion))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// bar renders a completion percentage as a fixed-width block bar.
func bar(rate int) string {
	if rate < 0 {
		rate = 0
	}
	if rate > 100 {
		rate = 100
	}
	filled := rate * barWidth / 100
	b := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	switch {
	case rate == 100:
		return color.GreenString(b)
	case rate == 0:
		return color.New(color.Faint).Sprint(b)
	default:
		return color.YellowString(b)
	}
}
