package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawmaster-kr/lawmaster/internal/draft"
	"github.com/lawmaster-kr/lawmaster/internal/utils"
)

// demandCmd represents the demand command
var demandCmd = &cobra.Command{
	Use:   "demand",
	Short: "Draft a pre-litigation formal demand (내용증명)",
	Run: func(cmd *cobra.Command, args []string) {
		caller, err := draft.NewAnthropicCallerFromEnv()
		if err != nil {
			utils.Log.Fatal(err)
		}
		sender, _ := cmd.Flags().GetString("sender")
		recipient, _ := cmd.Flags().GetString("recipient")
		facts, _ := cmd.Flags().GetString("facts")

		text, err := draft.NewDrafter(caller).DemandLetter(context.Background(), sender, recipient, facts)
		if err != nil {
			utils.Log.Fatal(err)
		}
		fmt.Println(text)
		fmt.Println()
		fmt.Println(draft.Disclaimer)
	},
}

func init() {
	rootCmd.AddCommand(demandCmd)
	demandCmd.Flags().StringP("sender", "s", "", "Sender name")
	demandCmd.Flags().StringP("recipient", "r", "", "Recipient name")
	demandCmd.Flags().StringP("facts", "f", "", "What happened and what is demanded")
}
