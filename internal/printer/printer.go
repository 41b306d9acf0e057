package printer

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"marquee/internal/domain"
)

// Render writes the catalog as a table. Styled output is used on terminals;
// plain borders elsewhere so the output stays pipe-friendly.
func Render(w io.Writer, movies []domain.Movie, styled bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	t.AppendHeader(table.Row{"ID", "Title", "Year", "Genre"})
	for _, m := range movies {
		t.AppendRow(table.Row{m.ID, m.DisplayTitle(), m.DisplayYear(), m.DisplayGenre()})
	}
	t.AppendFooter(table.Row{"", "", "", len(movies)})

	if styled {
		t.SetStyle(table.StyleRounded)
	} else {
		t.SetStyle(table.StyleDefault)
	}

	t.Render()
}
