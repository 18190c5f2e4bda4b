package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lawmaster-kr/lawmaster/internal/lawapi"
	"github.com/lawmaster-kr/lawmaster/internal/utils"
)

// statuteCmd represents the statute command
var statuteCmd = &cobra.Command{
	Use:   "statute <keyword>",
	Short: "Search statutes on the National Law Information Center",
	Long:  "Searches law.go.kr for statutes matching a keyword. Requires the open-API ID (the OC parameter) in the config as lawapi.oc or via --oc.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		oc, _ := cmd.Flags().GetString("oc")
		if oc == "" {
			oc = viper.GetString("lawapi.oc")
		}
		limit, _ := cmd.Flags().GetInt("limit")

		client := lawapi.New(oc)
		if !client.Enabled() {
			utils.Log.Fatal("law.go.kr API ID not configured (set lawapi.oc or --oc)")
		}
		hits, err := client.SearchStatutes(context.Background(), strings.Join(args, " "), limit)
		if err != nil {
			utils.Log.Fatal(err)
		}
		if len(hits) == 0 {
			fmt.Println("검색 결과가 없습니다.")
			return
		}
		for _, hit := range hits {
			fmt.Println(hit.Line())
		}
	},
}

func init() {
	rootCmd.AddCommand(statuteCmd)
	statuteCmd.Flags().StringP("oc", "", "", "law.go.kr open-API ID")
	statuteCmd.Flags().IntP("limit", "n", 5, "Maximum number of hits")
}
