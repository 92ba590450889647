package view

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RenderText печатает экран в виде простого текста для терминала.
func RenderText(w io.Writer, v View) error {
	bw := bufio.NewWriter(w)

	switch view := v.(type) {
	case HomeView:
		fmt.Fprintf(bw, "%s\n%s\n\n", view.Title, view.Subtitle)
		fmt.Fprintf(bw, "Total Dishes: %d\n", view.TotalItems)
		fmt.Fprintf(bw, "Average Price: %s\n\n", view.AveragePriceLabel)
		fmt.Fprintf(bw, "Full Menu Overview  [%s]\n", view.FilterAction.Label)
		writeRows(bw, view.Dishes, view.EmptyText, false)
	case ManageView:
		fmt.Fprintf(bw, "%s\n\n", view.Title)
		fmt.Fprintln(bw, "Add New Dish")
		fmt.Fprintf(bw, "  Name:        %s\n", view.Form.Name)
		fmt.Fprintf(bw, "  Description: %s\n", view.Form.Description)
		fmt.Fprintf(bw, "  Course:      %s\n", formatOptions(view.Courses))
		fmt.Fprintf(bw, "  Price:       %s\n\n", view.Form.Price)
		fmt.Fprintln(bw, view.RemoveHeading)
		writeRows(bw, view.Dishes, view.EmptyText, true)
	case FilterView:
		fmt.Fprintf(bw, "%s\n%s\n", view.Title, view.Subtitle)
		fmt.Fprintf(bw, "%s\n\n", formatOptions(view.Options))
		writeRows(bw, view.Dishes, view.EmptyText, false)
	default:
		return fmt.Errorf("unsupported view %T", v)
	}

	fmt.Fprintf(bw, "\n%s\n", formatNav(v.Navigation()))
	return bw.Flush()
}

// RenderAlertText печатает диалог.
func RenderAlertText(w io.Writer, alert *Alert) error {
	if alert == nil {
		return nil
	}
	labels := make([]string, 0, len(alert.Actions))
	for _, a := range alert.Actions {
		labels = append(labels, "["+a.Label+"]")
	}
	_, err := fmt.Fprintf(w, "%s: %s %s\n", alert.Title, alert.Message, strings.Join(labels, " "))
	return err
}

func writeRows(w io.Writer, rows []DishRow, emptyText string, withID bool) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "  "+emptyText)
		return
	}
	for _, row := range rows {
		if withID {
			fmt.Fprintf(w, "  - %s [%s] id=%s\n", row.Title(), row.Course, row.ID)
		} else {
			fmt.Fprintf(w, "  - %s [%s]\n", row.Title(), row.Course)
		}
		fmt.Fprintf(w, "    %s\n", row.Description)
	}
}

func formatOptions(options []CourseOption) string {
	parts := make([]string, 0, len(options))
	for _, o := range options {
		if o.Selected {
			parts = append(parts, "("+o.Label+")")
			continue
		}
		parts = append(parts, o.Label)
	}
	return strings.Join(parts, " | ")
}

func formatNav(nav []NavControl) string {
	parts := make([]string, 0, len(nav))
	for _, n := range nav {
		if n.Active {
			parts = append(parts, "*"+n.Label+"*")
			continue
		}
		parts = append(parts, n.Label)
	}
	return strings.Join(parts, "   ")
}
