package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
	"github.com/vladislavdragonenkov/menuboard/internal/view"
)

func newHomeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "home",
		Aliases: []string{"menu"},
		Short:   "Show the menu overview with total dishes and average price",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			return show(cmd.OutOrStdout(), s, view.ScreenHome)
		},
	}
}

func newFilterCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "filter [all|Starter|Main|Dessert|Beverage]",
		Short: "Show dishes of one course",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			if len(args) == 1 {
				raw = args[0]
			}
			course, err := domain.ParseCourseFilter(raw)
			if err != nil {
				return fmt.Errorf("%w: %q", err, raw)
			}

			s, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			if err := s.Navigate(view.ScreenFilterMenu); err != nil {
				return err
			}
			if err := s.SelectCourse(course); err != nil {
				return err
			}
			return view.RenderText(cmd.OutOrStdout(), s.Render())
		},
	}
}

func newManageCmd(c *cli) *cobra.Command {
	manage := &cobra.Command{
		Use:   "manage",
		Short: "Show the management screen; add or remove dishes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			return show(cmd.OutOrStdout(), s, view.ScreenManageMenu)
		},
	}
	manage.AddCommand(newAddCmd(c), newRemoveCmd(c))
	return manage
}

func newAddCmd(c *cli) *cobra.Command {
	var name, description, course, price string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a dish to the menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if err := s.EditForm(view.FieldCourse, course); err != nil {
				return fmt.Errorf("%w: %q", err, course)
			}
			_ = s.EditForm(view.FieldName, name)
			_ = s.EditForm(view.FieldDescription, description)
			_ = s.EditForm(view.FieldPrice, price)

			alert := s.SubmitForm(cmd.Context())
			if alert.Title != view.AlertTitleSuccess {
				_ = view.RenderAlertText(cmd.ErrOrStderr(), alert)
				return errSilent
			}
			if err := view.RenderAlertText(out, alert); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out)
			return show(out, s, view.ScreenManageMenu)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "dish name")
	cmd.Flags().StringVar(&description, "description", "", "dish description")
	cmd.Flags().StringVar(&course, "course", string(domain.CourseStarter), "course: Starter|Main|Dessert|Beverage")
	cmd.Flags().StringVar(&price, "price", "", "price, a number greater than zero")
	return cmd
}

func newRemoveCmd(c *cli) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a dish after confirmation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			alert := s.RequestRemove(args[0])
			if alert == nil {
				_, _ = fmt.Fprintf(out, "No dish with id %q, nothing removed.\n", args[0])
				return nil
			}
			if err := view.RenderAlertText(out, alert); err != nil {
				return err
			}

			if !yes && !confirmed(c, out) {
				s.CancelRemove()
				_, _ = fmt.Fprintln(out, "Cancelled.")
				return nil
			}
			s.ConfirmRemove(cmd.Context())
			_, _ = fmt.Fprintln(out)
			return show(out, s, view.ScreenManageMenu)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "remove without asking")
	return cmd
}

// confirmed читает ответ на диалог удаления: "y", "yes" или "remove".
func confirmed(c *cli, out io.Writer) bool {
	_, _ = fmt.Fprint(out, "Remove? [y/N] ")
	if c.in == nil {
		return false
	}
	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "remove":
		return true
	default:
		return false
	}
}

func newResetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the saved menu and return to the default dishes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := c.session(cmd.Context())
			if err != nil {
				return err
			}
			if err := c.rt.Menu.Reset(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Menu reset to the default dishes.")
			return show(cmd.OutOrStdout(), s, view.ScreenHome)
		},
	}
}
