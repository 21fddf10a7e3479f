package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(offerCmd)
}

var offerCmd = &cobra.Command{
	Use:   "offer <id>",
	Short: "Prints a single offer with its parameters and seller.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatal(err)
		}
		offer, err := client.GetOffer(cmd.Context(), id)
		if err != nil {
			log.Fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendRow(table.Row{"Offer", offer.ID})
		t.AppendRow(table.Row{"Summary", offer.ShortDescription})
		t.AppendRow(table.Row{"Price", offer.Price})
		t.AppendRow(table.Row{"Auto delivery", offer.AutoDelivery})
		for key, value := range offer.Parameters {
			t.AppendRow(table.Row{key, value})
		}
		t.AppendRow(table.Row{
			"Seller",
			fmt.Sprintf("%s (%d reviews)", offer.Seller.Username, offer.Seller.ReviewCount),
		})
		if len(offer.AttachmentLinks) > 0 {
			t.AppendRow(table.Row{"Attachments", strings.Join(offer.AttachmentLinks, "\n")})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()

		if offer.DetailedDescription != "" {
			fmt.Println(offer.DetailedDescription)
		}
	},
}
