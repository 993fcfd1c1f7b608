package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/planbook/planbook/pkg/dateutil"
	"github.com/planbook/planbook/pkg/plan"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Day renders the full view for one date: schedule, task stats, study
// sessions, and practice activities.
func (pp *PrettyPrint) Day(key dateutil.Key, r *plan.DayRecord) {
	pp.Title(fmt.Sprintf("%s (%s)", key.Label(), key.DayName()))
	pp.Tasks(r)
	pp.Study(r)
	pp.Practice(r)
}

func (pp *PrettyPrint) Tasks(r *plan.DayRecord) {
	section := color.New(color.Bold)
	_, _ = section.Fprintln(color.Output, "\nSchedule")

	if len(r.Tasks) == 0 {
		pp.none()
	} else {
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, t := range r.Tasks {
			row := []interface{}{doneGlyph(t.Done), timeRange(t.Start, t.End), t.Name, faint(t.Category)}
			if pp.ShowID {
				row = append(row, faint(t.ID))
			}
			tbl.AddRow(row...)
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}

	s := r.Stats()
	f := color.New(color.Faint)
	_, _ = f.Fprintf(color.Output, "%d of %d done (%d%%)\n", s.Completed, s.Total, s.Rate)
}

func (pp *PrettyPrint) Study(r *plan.DayRecord) {
	section := color.New(color.Bold)
	_, _ = section.Fprintln(color.Output, "\nStudy")

	if len(r.Topics) == 0 {
		pp.none()
	} else {
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, st := range r.Topics {
			row := []interface{}{st.Topic, minutesLabel(st.Minutes), string(st.Difficulty), faint(st.Resource)}
			if pp.ShowID {
				row = append(row, faint(st.ID))
			}
			tbl.AddRow(row...)
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}

	s := r.StudySummary()
	f := color.New(color.Faint)
	_, _ = f.Fprintf(color.Output, "%d sessions, %d min\n", s.Sessions, s.Minutes)
}

func (pp *PrettyPrint) Practice(r *plan.DayRecord) {
	section := color.New(color.Bold)
	_, _ = section.Fprintln(color.Output, "\nPractice")

	if len(r.Practice) == 0 {
		pp.none()
	} else {
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, a := range r.Practice {
			row := []interface{}{doneGlyph(a.Done), a.Type, minutesLabel(a.Minutes), a.Content}
			if pp.ShowID {
				row = append(row, faint(a.ID))
			}
			tbl.AddRow(row...)
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}

	s := r.PracticeSummary()
	f := color.New(color.Faint)
	_, _ = f.Fprintf(color.Output, "%d of %d done, %d min\n", s.Completed, s.Total, s.Minutes)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintln(color.Output, " none")
}

func doneGlyph(done bool) string {
	if done {
		return color.GreenString("✔")
	}
	return color.New(color.Faint).Sprint("·")
}

func timeRange(start, end string) string {
	if end == "" {
		return start
	}
	return start + "-" + end
}

func minutesLabel(d plan.Duration) string {
	if !d.IsSet() {
		return ""
	}
	s := d.String()
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s + " min"
}

func faint(s string) string {
	if s == "" {
		return ""
	}
	return color.New(color.Faint).Sprint(s)
}
