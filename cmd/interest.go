package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lawmaster-kr/lawmaster/internal/litigation"
	"github.com/lawmaster-kr/lawmaster/internal/utils"
)

// interestCmd represents the interest command
var interestCmd = &cobra.Command{
	Use:   "interest <amount>",
	Short: "Compute overdue interest on a principal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rate, _ := cmd.Flags().GetFloat64("rate")
		fromFlag, _ := cmd.Flags().GetString("from")
		toFlag, _ := cmd.Flags().GetString("to")

		from, err := time.Parse("2006-01-02", fromFlag)
		if err != nil {
			utils.Log.Fatal("from must be YYYY-MM-DD")
		}
		to := time.Now()
		if toFlag != "" {
			to, err = time.Parse("2006-01-02", toFlag)
			if err != nil {
				utils.Log.Fatal("to must be YYYY-MM-DD")
			}
		}

		principal := litigation.ParseAmount(args[0])
		interest, ok := litigation.OverdueInterest(principal, rate, from, to)
		if !ok {
			utils.Log.Fatal("the period must end after it starts")
		}
		fmt.Printf("원금:     %d원\n", principal)
		fmt.Printf("지연이자: %d원 (연 %.1f%%)\n", interest, rate)
		fmt.Printf("합계:     %d원\n", principal+interest)
	},
}

func init() {
	rootCmd.AddCommand(interestCmd)
	interestCmd.Flags().Float64P("rate", "r", 12.0, "Annual interest rate in percent (통상 12%, 소촉법)")
	interestCmd.Flags().StringP("from", "f", "", "Start of the overdue period (YYYY-MM-DD)")
	interestCmd.Flags().StringP("to", "t", "", "End of the overdue period (YYYY-MM-DD, default today)")
}
