package cmd

import (
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(promoCmd)
}

var promoCmd = &cobra.Command{
	Use:   "promo <query>",
	Short: "Searches games with active promotions.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		games, err := client.GetPromoGames(cmd.Context(), args[0])
		if err != nil {
			log.Fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Lot", "Game", "Category"})
		for _, game := range games {
			t.AppendRow(table.Row{game.LotID, game.Title, ""})
			for _, counter := range game.Counters {
				t.AppendRow(table.Row{counter.LotID, "", counter.Title})
			}
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
