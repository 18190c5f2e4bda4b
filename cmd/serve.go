package cmd

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lawmaster-kr/lawmaster/internal/docstore"
	"github.com/lawmaster-kr/lawmaster/internal/draft"
	"github.com/lawmaster-kr/lawmaster/internal/httpapi"
	"github.com/lawmaster-kr/lawmaster/internal/utils"

	homedir "github.com/mitchellh/go-homedir"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Long: `Serves the rule layer and the drafter over HTTP. Drafting endpoints
are enabled when ANTHROPIC_API_KEY is set; without it the API still answers
court, scenario, cost and timeline requests.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")

		var drafter *draft.Drafter
		if caller, err := draft.NewAnthropicCallerFromEnv(); err == nil {
			drafter = draft.NewDrafter(caller)
		} else {
			utils.Log.Warn("drafting disabled: ", err)
		}

		store, err := docstore.Open(storePath())
		if err != nil {
			utils.Log.Fatal(err)
		}
		defer store.Close()

		utils.Log.Info("listening on ", addr)
		if err := http.ListenAndServe(addr, httpapi.NewServer(drafter, store)); err != nil {
			utils.Log.Fatal(err)
		}
	},
}

func storePath() string {
	if p := viper.GetString("store.path"); p != "" {
		return p
	}
	home, err := homedir.Dir()
	if err != nil {
		utils.Log.Fatal(err)
	}
	dir := filepath.Join(home, ".lawmaster")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		utils.Log.Fatal(err)
	}
	return filepath.Join(dir, "lawmaster.db")
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", ":8840", "Listen address")
}
