package commands

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"studenthome_backend/internals/constants"
	database "studenthome_backend/internals/databases"
	"studenthome_backend/internals/features/students/home/dto"
	"studenthome_backend/internals/features/students/home/service"
	"studenthome_backend/internals/helpers/dbtime"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	courseStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	statusStyles = map[string]lipgloss.Style{
		constants.StatusAwaiting:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		constants.StatusPending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		constants.StatusSubmitted: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		constants.StatusPublished: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		constants.StatusClosed:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	}
)

func NewRenderCommand() *cobra.Command {
	var (
		googleID   string
		timezone   string
		showMarkup bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a student's dashboard as the API would build it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(googleID) == "" {
				return fmt.Errorf("--google-id is required")
			}
			if err := database.ConnectDB(); err != nil {
				return err
			}
			defer database.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			in, err := service.NewHomeLoader(database.DB).LoadStudentHome(ctx, googleID, time.Now())
			if err != nil {
				return fmt.Errorf("load student home: %w", err)
			}
			page, err := service.BuildStudentHomePage(in.Account, in.Courses, in.Statuses, dbtime.ResolveLocation(timezone))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderStudentHome(page, showMarkup))
			return nil
		},
	}
	cmd.Flags().StringVar(&googleID, "google-id", "", "Account google id")
	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA time zone for end times (default APP_TIMEZONE)")
	cmd.Flags().BoolVar(&showMarkup, "markup", false, "Also print each row's action button markup")
	return cmd
}

func renderStudentHome(page *dto.StudentHomePageData, showMarkup bool) string {
	var s strings.Builder
	s.WriteString(titleStyle.Render(fmt.Sprintf("Student home: %s <%s>", page.Account.Name, page.Account.Email)) + "\n")

	if len(page.CourseTables) == 0 {
		s.WriteString(dimStyle.Render("Not enrolled in any course.") + "\n")
		return s.String()
	}

	for _, table := range page.CourseTables {
		var body strings.Builder
		body.WriteString(courseStyle.Render(fmt.Sprintf("[%s] %s", table.Course.ID, table.Course.Name)) + "\n")
		for _, link := range table.Links {
			body.WriteString(dimStyle.Render(fmt.Sprintf("%s -> %s", link.Content, link.Attr("href"))) + "\n")
		}

		if len(table.Sessions) == 0 {
			body.WriteString(dimStyle.Render("No feedback sessions."))
		}
		for i, row := range table.Sessions {
			if i > 0 {
				body.WriteString("\n")
			}
			status := row.Status
			if st, ok := statusStyles[row.Status]; ok {
				status = st.Render(row.Status)
			}
			// row names are escaped for the HTML template; the terminal wants the raw text
			fmt.Fprintf(&body, "#%s %s  (ends %s)  %s\n", row.Index, html.UnescapeString(row.Name), row.EndTime, status)
			body.WriteString(dimStyle.Render("   " + strings.ReplaceAll(row.Tooltip, "<br>", " ")))
			if showMarkup {
				body.WriteString("\n   " + row.Actions)
			}
		}
		s.WriteString(boxStyle.Render(body.String()) + "\n")
	}
	return s.String()
}
