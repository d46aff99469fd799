package main

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/lully/dayplan/internal/domain"
	"github.com/lully/dayplan/internal/usecase/planner"
)

var (
	planName     string
	planFirst    string
	planInterval string
	planLast     string
	planBaseURL  string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print today's schedule to the terminal",
	Long: `Generates today's schedule from the given settings and prints it as a
table, marking the block that is active right now. Malformed settings fall
back to the defaults, the same way the web pages treat them.

Examples:
  lully plan
  lully plan --first 06:30 --interval 2.5 --last 18:30
  lully plan --name Maeve --base-url https://plan.example.com`,
	RunE: runPlan,
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVar(&planName, "name", "", "baby name shown on the schedule")
	planCmd.Flags().StringVar(&planFirst, "first", "", "first feed time (HH:MM)")
	planCmd.Flags().StringVar(&planInterval, "interval", "", "hours between feeds")
	planCmd.Flags().StringVar(&planLast, "last", "", "last feed time (HH:MM)")
	planCmd.Flags().StringVar(&planBaseURL, "base-url", "", "also print a share link rooted at this base URL")
}

func runPlan(cmd *cobra.Command, args []string) error {
	q := url.Values{}
	q.Set("name", planName)
	q.Set("first", planFirst)
	q.Set("interval", planInterval)
	q.Set("last", planLast)

	now := time.Now()
	p := planner.ParamsFromQuery(q, planner.Defaults{})
	plan := planner.BuildPlan(now, p)

	fmt.Printf("%s's plan for %s\n\n", plan.Name, plan.Day.Format("Monday, January 2"))

	if len(plan.Blocks) == 0 {
		fmt.Println("No schedule for these settings. The last feed must not be earlier than the first.")
		return nil
	}

	activeID, _ := domain.FindActiveBlock(plan.Blocks, now)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "START\tEND\tACTIVITY\t")
	for _, b := range plan.Blocks {
		end := "-"
		if b.End != nil {
			end = b.End.Format("15:04")
		}
		marker := ""
		if b.ID == activeID {
			marker = "  <- now"
		}
		fmt.Fprintf(w, "%s\t%s\t%s%s\t\n", b.Start.Format("15:04"), end, b.Type, marker)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if planBaseURL != "" {
		fmt.Printf("\nShare link: %s/schedule?%s\n", strings.TrimRight(planBaseURL, "/"), p.Query().Encode())
	}
	return nil
}
