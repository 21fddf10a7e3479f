package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"funpaygo/lib/scrapers/funpay"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(userCmd)
}

var userCmd = &cobra.Command{
	Use:   "user <id>",
	Short: "Prints a user profile; sellers include their rating, offers and last reviews.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatal(err)
		}
		profile, err := client.GetUser(cmd.Context(), id)
		if err != nil {
			log.Fatal(err)
		}

		lastSeen := "unknown"
		if !profile.LastSeenAt.IsZero() {
			lastSeen = profile.LastSeenAt.Format(time.DateTime)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendRow(table.Row{"User", fmt.Sprintf("%s (%d)", profile.Username, profile.ID)})
		t.AppendRow(table.Row{"Online", profile.Online})
		if len(profile.Badges) > 0 {
			t.AppendRow(table.Row{"Badges", strings.Join(profile.Badges, ", ")})
		}
		t.AppendRow(table.Row{"Registered", profile.RegisteredAt.Format(time.DateTime)})
		t.AppendRow(table.Row{"Last seen", lastSeen})
		if profile.IsSeller() {
			t.AppendRow(table.Row{"Rating", profile.Seller.Rating})
			t.AppendRow(table.Row{"Reviews", profile.Seller.ReviewCount})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()

		if !profile.IsSeller() {
			return
		}

		if len(profile.Seller.PreviewOffers) > 0 {
			offers := table.NewWriter()
			offers.SetOutputMirror(os.Stdout)
			offers.AppendHeader(table.Row{"Offer", "Description", "Price", "Auto"})
			offers.AppendRows(lo.Map(profile.Seller.PreviewOffers, func(o funpay.PreviewOffer, _ int) table.Row {
				return table.Row{o.OfferID, o.ShortDescription, o.Price, o.AutoDelivery}
			}))
			offers.SetStyle(table.StyleRounded)
			offers.Render()
		}

		if len(profile.Seller.LastReviews) > 0 {
			reviews := table.NewWriter()
			reviews.SetOutputMirror(os.Stdout)
			reviews.AppendHeader(table.Row{"Game", "Price", "Stars", "Text"})
			reviews.AppendRows(lo.Map(profile.Seller.LastReviews, func(r funpay.SellerReview, _ int) table.Row {
				return table.Row{r.GameTitle, r.Price, r.Stars, r.Text}
			}))
			reviews.SetStyle(table.StyleRounded)
			reviews.Render()
		}
	},
}
