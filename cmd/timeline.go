package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lawmaster-kr/lawmaster/internal/litigation"
	"github.com/lawmaster-kr/lawmaster/internal/utils"
)

// timelineCmd represents the timeline command
var timelineCmd = &cobra.Command{
	Use:   "timeline <amount>",
	Short: "Project the expected litigation schedule for a money claim",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		startFlag, _ := cmd.Flags().GetString("start")
		start := time.Now()
		if startFlag != "" {
			parsed, err := time.Parse("2006-01-02", startFlag)
			if err != nil {
				utils.Log.Fatal("start must be YYYY-MM-DD")
			}
			start = parsed
		}

		steps, costs := litigation.ProjectTimeline(litigation.ParseAmount(args[0]), start)
		for _, step := range steps {
			fmt.Printf("%2d주  %s  %s\n      %s\n", step.WeekOffset, step.Date.Format("2006-01-02"), step.Event, step.Description)
		}
		fmt.Printf("\n인지액 %d원, 송달료 %d원\n", costs.StampDuty, costs.ServiceFee)
	},
}

func init() {
	rootCmd.AddCommand(timelineCmd)
	timelineCmd.Flags().StringP("start", "s", "", "Filing date (YYYY-MM-DD, default today)")
}
