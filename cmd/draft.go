package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lawmaster-kr/lawmaster/internal/draft"
	"github.com/lawmaster-kr/lawmaster/internal/export"
	"github.com/lawmaster-kr/lawmaster/internal/utils"
)

// draftCmd represents the draft command
var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft a filing document with the configured model",
	Long: `Drafts a complete filing document (소장, 지급명령신청서, 고소장 and so on)
from the case facts, resolving the court, scenario and costs along the way.
Requires ANTHROPIC_API_KEY.`,
	Run: func(cmd *cobra.Command, args []string) {
		caller, err := draft.NewAnthropicCallerFromEnv()
		if err != nil {
			utils.Log.Fatal(err)
		}

		menu, _ := cmd.Flags().GetString("menu")
		address, _ := cmd.Flags().GetString("address")
		court, _ := cmd.Flags().GetString("court")
		plaintiff, _ := cmd.Flags().GetString("plaintiff")
		defendant, _ := cmd.Flags().GetString("defendant")
		amount, _ := cmd.Flags().GetString("amount")
		facts, _ := cmd.Flags().GetString("facts")
		evidence, _ := cmd.Flags().GetString("evidence")
		outPath, _ := cmd.Flags().GetString("out")
		pdfPath, _ := cmd.Flags().GetString("pdf")

		d := draft.NewDrafter(caller)
		res, err := d.Document(context.Background(), draft.Request{
			Menu:      menu,
			Address:   address,
			Court:     court,
			Plaintiff: plaintiff,
			Defendant: defendant,
			Amount:    amount,
			Facts:     facts,
			Evidence:  evidence,
		})
		if err != nil {
			utils.Log.Fatal(err)
		}

		doc := export.Markdown(export.BuildPacket(res, time.Now()))
		if outPath != "" {
			if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
				utils.Log.Fatal(err)
			}
			utils.Log.Info("markdown written to ", outPath)
		} else {
			fmt.Println(doc)
		}

		if pdfPath != "" {
			pdf, err := export.NewPDFRenderer().Render(context.Background(), doc)
			if err != nil {
				utils.Log.Fatal(err)
			}
			if err := os.WriteFile(pdfPath, pdf, 0o644); err != nil {
				utils.Log.Fatal(err)
			}
			utils.Log.Info("pdf written to ", pdfPath)
		}
	},
}

func init() {
	rootCmd.AddCommand(draftCmd)
	draftCmd.Flags().StringP("menu", "m", "민사소송 (기 타)", "Document menu, e.g. '민사소송 (대여금)', '지급명령 (대여금)', '형사소송 (고소/고발)'")
	draftCmd.Flags().StringP("address", "a", "", "Defendant address for court resolution")
	draftCmd.Flags().StringP("court", "", "", "Override the resolved court")
	draftCmd.Flags().StringP("plaintiff", "p", "", "Plaintiff name")
	draftCmd.Flags().StringP("defendant", "d", "", "Defendant name")
	draftCmd.Flags().StringP("amount", "", "", "Claim amount in KRW")
	draftCmd.Flags().StringP("facts", "f", "", "Case facts")
	draftCmd.Flags().StringP("evidence", "e", "", "Evidence items, one per line")
	draftCmd.Flags().StringP("out", "o", "", "Write the markdown packet to this file instead of stdout")
	draftCmd.Flags().StringP("pdf", "", "", "Also render the packet to this PDF file (requires Chromium)")
}
