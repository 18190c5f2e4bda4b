package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lawmaster-kr/lawmaster/internal/casefile"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Self-check whether a case is ready to file",
	Run: func(cmd *cobra.Command, args []string) {
		opponent, _ := cmd.Flags().GetBool("opponent")
		limitation, _ := cmd.Flags().GetBool("limitation")
		evidence, _ := cmd.Flags().GetBool("evidence")

		r := casefile.Assess(casefile.Checklist{
			KnowsOpponent:    opponent,
			WithinLimitation: limitation,
			HasEvidence:      evidence,
		})
		fmt.Printf("%s (%d/%d)\n", r.Verdict, r.Score, r.Max)
		fmt.Println(r.Advice)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolP("opponent", "o", false, "상대방의 이름과 주소(또는 주민번호)를 알고 있다")
	checkCmd.Flags().BoolP("limitation", "t", false, "소멸시효가 지나지 않았다")
	checkCmd.Flags().BoolP("evidence", "e", false, "입증 자료(계약서, 차용증, 녹취 등)를 가지고 있다")
}
