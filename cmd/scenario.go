package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lawmaster-kr/lawmaster/internal/scenario"
)

// scenarioCmd represents the scenario command
var scenarioCmd = &cobra.Command{
	Use:   "scenario <facts>",
	Short: "Classify a case description into a claim scenario",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		facts := strings.Join(args, " ")
		def := scenario.Classify(facts)
		fmt.Printf("%s (%s)\n", def.Label, def.Kind)
	},
}

func init() {
	rootCmd.AddCommand(scenarioCmd)
}
