package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"funpaygo/lib/scrapers/funpay"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lotCmd)
}

var lotCmd = &cobra.Command{
	Use:   "lot <id>",
	Short: "Prints a lot listing with its counters and preview offers.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatal(err)
		}
		lot, err := client.GetLot(cmd.Context(), id)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Printf("%s (game %d)\n%s\n", lot.Title, lot.GameID, lot.Description)

		if len(lot.Counters) > 0 {
			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.AppendHeader(table.Row{"Lot", "Category", "Offers"})
			t.AppendRows(lo.Map(lot.Counters, func(c funpay.LotCounter, _ int) table.Row {
				return table.Row{c.LotID, c.Param, c.Counter}
			}))
			t.SetStyle(table.StyleRounded)
			t.Render()
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Offer", "Description", "Price", "Auto", "Promo", "Seller", "Reviews"})
		t.AppendRows(lo.Map(lot.PreviewOffers, func(o funpay.PreviewOffer, _ int) table.Row {
			return table.Row{
				o.OfferID,
				o.ShortDescription,
				o.Price,
				o.AutoDelivery,
				o.Promo,
				o.Seller.Username,
				o.Seller.ReviewCount,
			}
		}))
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
