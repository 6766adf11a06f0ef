package sales

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	title  = color.New(color.Bold, color.FgCyan)
	label  = color.New(color.FgHiBlack)
	value  = color.New(color.Bold)
	zero   = color.New(color.FgHiBlack)
	header = color.New(color.Underline)
)

// Render はターミナル向けの表を書く
func (r Report) Render(w io.Writer) {
	title.Fprintf(w, "Sales %s .. %s (UTC)\n\n", r.Start.Format("2006-01-02"), r.End.Format("2006-01-02"))

	card := func(name, v string) {
		label.Fprintf(w, "%-22s", name)
		value.Fprintln(w, v)
	}
	card("Total units sold", fmt.Sprint(r.TotalUnits))
	card("Total revenue", "$"+r.TotalRevenue.StringFixed(2))
	card("Avg daily units", r.AvgDailyUnits.StringFixed(1))
	card("Avg daily revenue", "$"+r.AvgDailyRevenue.StringFixed(2))
	card("Purchase records", fmt.Sprint(r.Records))
	card("Units/line p50/p90/p99", fmt.Sprintf("%d / %d / %d", r.UnitsPerLine.P50, r.UnitsPerLine.P90, r.UnitsPerLine.P99))
	fmt.Fprintln(w)

	header.Fprintf(w, "%-12s %8s %12s %6s\n", "date", "units", "revenue", "tx")
	for _, d := range r.Days {
		line := fmt.Sprintf("%-12s %8d %12s %6d\n", d.Date.Format("2006-01-02"), d.UnitsSold, d.Revenue.StringFixed(2), d.Transactions)
		if d.Transactions == 0 {
			zero.Fprint(w, line)
			continue
		}
		fmt.Fprint(w, line)
	}

	renderTop(w, "Top days by units", r.TopByUnits)
	renderTop(w, "Top days by revenue", r.TopByRevenue)
}

func renderTop(w io.Writer, name string, days []Day) {
	fmt.Fprintln(w)
	title.Fprintln(w, name)
	if len(days) == 0 {
		zero.Fprintln(w, "  no sales in range")
		return
	}
	for _, d := range days {
		fmt.Fprintf(w, "  %s  %d units  $%s\n", d.Date.Format("2006-01-02"), d.UnitsSold, d.Revenue.StringFixed(2))
	}
}
