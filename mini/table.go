package mini

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/streamsan-cli/streamsan/selection"
	"github.com/streamsan-cli/streamsan/source"
	"github.com/streamsan-cli/streamsan/util"
)

func renderTable(headers table.Row, rows []table.Row, rightAligned ...int) {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(headers)
	tw.AppendRows(rows)

	configs := make([]table.ColumnConfig, 0, len(rightAligned))
	for _, column := range rightAligned {
		configs = append(configs, table.ColumnConfig{
			Number:      column,
			Align:       text.AlignRight,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(configs)

	fmt.Println(tw.Render())
}

func renderMediaTable(media []*source.Media) {
	rows := make([]table.Row, len(media))
	for i, item := range media {
		watchers := ""
		if item.Watchers > 0 {
			watchers = strconv.Itoa(item.Watchers)
		}

		rows[i] = table.Row{
			i + 1,
			truncate(item.Title, truncateAt/2),
			item.Year,
			util.Capitalize(string(item.Type)),
			watchers,
		}
	}

	renderTable(table.Row{"#", "Title", "Year", "Type", "Watchers"}, rows, 1, 5)
}

func renderCandidateTable(result *selection.Result) {
	rows := make([]table.Row, len(result.Candidates))
	for i, candidate := range result.Candidates {
		rows[i] = table.Row{
			i + 1,
			truncate(candidate.Name, truncateAt/2),
			candidate.Provider,
			candidate.Resolution,
			candidate.Rip,
			candidate.Seeders,
			fmt.Sprintf("%.2f", candidate.Score),
		}
	}

	renderTable(table.Row{"#", "Name", "Provider", "Res", "Rip", "Seeders", "Score"}, rows, 1, 6, 7)
}
