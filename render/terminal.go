package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Terminal renders aligned plain-text columns.
type Terminal struct{}

func (Terminal) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (Terminal) Render(w io.Writer, view View) error {

	if view.Empty() {
		_, err := fmt.Fprintln(w, "No results found. Your filters might be too narrow.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tYEAR\tGENRES")

	for _, card := range view.Cards() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", card.BookID, card.Title, card.Author, card.Year, joinNames(card.Genres))
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	footer := fmt.Sprintf("page %d of %d, %d matching", view.Page, view.TotalPages, view.Count)
	if view.Remaining > 0 {
		footer += fmt.Sprintf(", show %d more", view.Remaining)
	}

	_, err := fmt.Fprintln(w, footer)
	return err
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
