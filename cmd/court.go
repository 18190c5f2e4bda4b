package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lawmaster-kr/lawmaster/internal/jurisdiction"
)

// courtCmd represents the court command
var courtCmd = &cobra.Command{
	Use:   "court <address>",
	Short: "Resolve the competent court for an address",
	Long:  "Resolves the competent court from a free-text address, honoring specialized family, insolvency and administrative courts when a category is given.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		category, _ := cmd.Flags().GetString("category")
		address := strings.Join(args, " ")
		fmt.Println(jurisdiction.Resolve(address, category))
	},
}

func init() {
	rootCmd.AddCommand(courtCmd)
	courtCmd.Flags().StringP("category", "c", "", "Case category, e.g. 민사소송, 가사소송, 행정소송, 파산·회생")
}
