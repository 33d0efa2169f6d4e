package board

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Render writes a plain-text rendition of v to w.
func Render(w io.Writer, v View) error {
	fmt.Fprintln(w, "TaskBoard")
	fmt.Fprintln(w, "Keep work moving.")
	fmt.Fprintln(w)

	switch {
	case v.Status == StatusLoading:
		fmt.Fprintln(w, "Loading tasks...")
		return nil
	case v.Status == StatusError:
		_, err := fmt.Fprintln(w, v.Error)
		return err
	}

	if v.Error != "" {
		fmt.Fprintf(w, "! %s\n\n", v.Error)
	}

	if len(v.Rows) == 0 {
		_, err := fmt.Fprintln(w, "No tasks yet. Add the first one.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, row := range v.Rows {
		fmt.Fprintf(tw, "#%d\t%s\t[%s]\n", row.Task.ID, row.Task.Title, badge(row.Task.IsComplete))
		if row.Editing {
			fmt.Fprintf(tw, "\t> %s\t\n", v.EditingTitle)
		}
	}
	return tw.Flush()
}

func badge(complete bool) string {
	if complete {
		return "Complete"
	}
	return "Open"
}
