package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/compliport/compliport/internal/schedule"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule [flags] <title>...",
	Short: "Preview a compliance schedule",
	Long: `Preview the compliance schedule that would be generated for the given
training or audit titles, without touching the database.

The same seed prefix always produces the same dates, so passing a client ID
as --seed reproduces exactly what the server would persist for that client.

Examples:
  compliport schedule "Fire Safety" "First Aid"
  compliport schedule --count 6 --seed acme-corp "Fire Safety"
  compliport schedule --holidays holidays.txt --from 2026-01-01 "Data Privacy"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSchedulePreview,
}

func init() {
	scheduleCmd.Flags().Int("count", 4, "Number of dates to generate per title")
	scheduleCmd.Flags().String("seed", "preview", "Seed prefix; use a client ID to match server output")
	scheduleCmd.Flags().String("from", "", "Start date (YYYY-MM-DD or DD/MM/YYYY), defaults to today")
	scheduleCmd.Flags().String("holidays", "", "File with one holiday date per line")
}

var (
	previewHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("37"))
	previewDateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	previewTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	previewMutedStyle  = lipgloss.NewStyle().Faint(true)
)

func runSchedulePreview(cmd *cobra.Command, args []string) error {
	lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).ColorProfile())

	count, _ := cmd.Flags().GetInt("count")
	seed, _ := cmd.Flags().GetString("seed")
	fromRaw, _ := cmd.Flags().GetString("from")
	holidaysFile, _ := cmd.Flags().GetString("holidays")

	from := time.Now()
	if fromRaw != "" {
		parsed, ok := schedule.ParseDate(fromRaw)
		if !ok {
			return fmt.Errorf("invalid --from date %q", fromRaw)
		}
		from = parsed
	}

	holidays, err := readHolidayFile(holidaysFile)
	if err != nil {
		return err
	}

	entries := schedule.Generate(args, holidays, count, seed, from)
	if len(entries) == 0 {
		fmt.Println(previewMutedStyle.Render("no schedule entries generated"))
		return nil
	}

	header := fmt.Sprintf("Compliance schedule preview (%d titles, %d dates each, seed %q)",
		len(args), count, seed)
	fmt.Println(previewHeaderStyle.Render(header))

	month := ""
	for _, e := range entries {
		if m := e.ScheduledFor.Format("January 2006"); m != month {
			month = m
			fmt.Println(previewMutedStyle.Render("  " + month))
		}
		fmt.Printf("    %s  %s\n",
			previewDateStyle.Render(e.Label),
			previewTitleStyle.Render(e.Title))
	}
	return nil
}

// readHolidayFile loads holiday dates, one per line. Blank lines and lines
// starting with # are skipped; dates are validated later by the generator.
func readHolidayFile(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path) //nolint:gosec // user-supplied CLI path
	if err != nil {
		return nil, fmt.Errorf("reading holidays file: %w", err)
	}
	var dates []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		dates = append(dates, line)
	}
	return dates, nil
}
