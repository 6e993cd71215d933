// ownly is the command-line companion to ownlyd. It talks to the
// daemon's HTTP API; it never opens the database itself.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
)

var addr string

func main() {
	root := &cobra.Command{
		Use:   "ownly",
		Short: "Log moods and read your patterns from the terminal",
	}
	root.PersistentFlags().StringVar(&addr, "addr", defaultAddr(), "ownlyd address")

	root.AddCommand(
		logCmd(),
		recentCmd(),
		insightsCmd(),
		patternsCmd(),
		predictCmd(),
		qualityCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultAddr() string {
	if v := os.Getenv("OWNLY_ADDR"); v != "" {
		return v
	}
	return "http://127.0.0.1:8271"
}

func client() *resty.Client {
	return resty.New().
		SetBaseURL(addr).
		SetTimeout(10 * time.Second)
}

func logCmd() *cobra.Command {
	var label, reflection string
	cmd := &cobra.Command{
		Use:   "log <mood 1-5>",
		Short: "Save a mood check-in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mood, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("mood must be an integer 1-5")
			}
			var entry model.MoodEntry
			resp, err := client().R().
				SetBody(model.EntryDraft{
					MoodValue:  mood,
					MoodLabel:  label,
					Reflection: reflection,
					Timestamp:  time.Now(),
				}).
				SetResult(&entry).
				Post("/entries")
			if err != nil {
				return err
			}
			if resp.IsError() {
				return fmt.Errorf("daemon: %s", resp.String())
			}
			fmt.Printf("saved entry #%d (%s)\n", entry.ID, entry.MoodLabel)
			return nil
		},
	}
	cmd.Flags().StringVarP(&label, "label", "l", "Okay", "mood label")
	cmd.Flags().StringVarP(&reflection, "note", "n", "", "free-text reflection")
	return cmd
}

func recentCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recent check-ins",
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []model.MoodEntry
			resp, err := client().R().
				SetQueryParam("limit", strconv.Itoa(limit)).
				SetResult(&entries).
				Get("/entries")
			if err != nil {
				return err
			}
			if resp.IsError() {
				return fmt.Errorf("daemon: %s", resp.String())
			}
			for _, e := range entries {
				line := fmt.Sprintf("#%-4d %s  %d/5 %s", e.ID, e.OrderTime().Format("Mon Jan 02 15:04"), e.MoodValue, e.MoodLabel)
				if e.HasReflection() {
					line += "  — " + e.Reflection
				}
				fmt.Println(line)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 10, "number of entries")
	return cmd
}

func insightsCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Show ranked insights",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := client().R()
			if limit > 0 {
				req.SetQueryParam("limit", strconv.Itoa(limit))
			}
			var out []model.MoodInsight
			resp, err := req.SetResult(&out).Get("/analysis/insights")
			if err != nil {
				return err
			}
			if resp.IsError() {
				return fmt.Errorf("daemon: %s", resp.String())
			}
			if len(out) == 0 {
				fmt.Println("no insights yet; keep logging")
				return nil
			}
			for _, ins := range out {
				fmt.Printf("[%s] %s\n", ins.Priority, ins.Observation)
				if ins.ActionableSuggestion != "" {
					fmt.Printf("        ↳ %s\n", ins.ActionableSuggestion)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "cap the list (0 = all)")
	return cmd
}

func patternsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "Show your top personal patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			var out []model.PersonalPattern
			resp, err := client().R().SetResult(&out).Get("/analysis/patterns")
			if err != nil {
				return err
			}
			if resp.IsError() {
				return fmt.Errorf("daemon: %s", resp.String())
			}
			if len(out) == 0 {
				fmt.Println("no patterns yet; five entries minimum")
				return nil
			}
			for _, p := range out {
				fmt.Printf("%-12s %.0f%%  %s\n", p.Type, p.Confidence*100, p.Pattern)
				fmt.Printf("             %s\n", p.ActionableInsight)
			}
			return nil
		},
	}
}

func predictCmd() *cobra.Command {
	var reflection string
	cmd := &cobra.Command{
		Use:   "predict <mood 1-5>",
		Short: "Forecast your next mood from the current one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pred model.PatternPrediction
			resp, err := client().R().
				SetQueryParam("mood", args[0]).
				SetQueryParam("reflection", reflection).
				SetResult(&pred).
				Get("/analysis/prediction")
			if err != nil {
				return err
			}
			if resp.IsError() {
				return fmt.Errorf("daemon: %s", resp.String())
			}
			fmt.Printf("predicted next mood: %d/5 (confidence %.0f%%, %s)\n",
				pred.PredictedMood, pred.Confidence*100, pred.BasedOn)
			if pred.PreventiveSuggestion != "" {
				fmt.Println(pred.PreventiveSuggestion)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&reflection, "note", "n", "", "what's on your mind right now")
	return cmd
}

func qualityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quality",
		Short: "Check whether there is enough data for analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			var q model.DataQuality
			resp, err := client().R().SetResult(&q).Get("/analysis/quality")
			if err != nil {
				return err
			}
			if resp.IsError() {
				return fmt.Errorf("daemon: %s", resp.String())
			}
			if q.HasEnoughData {
				fmt.Println("enough data; analysis is live")
			} else {
				fmt.Println(q.Reason)
			}
			return nil
		},
	}
}
