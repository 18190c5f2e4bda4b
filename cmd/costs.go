package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawmaster-kr/lawmaster/internal/litigation"
)

// costsCmd represents the costs command
var costsCmd = &cobra.Command{
	Use:   "costs <amount>",
	Short: "Estimate stamp duty and service fees for a claim amount",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		costs := litigation.ComputeCostsInput(args[0])
		fmt.Printf("청구 금액: %d원\n", costs.Principal)
		fmt.Printf("인지액:    %d원\n", costs.StampDuty)
		fmt.Printf("송달료:    %d원\n", costs.ServiceFee)
	},
}

func init() {
	rootCmd.AddCommand(costsCmd)
}
