package cmd

import (
	"log"
	"os"
	"strconv"
	"time"

	"funpaygo/lib/scrapers/funpay"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var reviewsPages int
var reviewsStars int

func init() {
	reviewsCmd.Flags().IntVar(&reviewsPages, "pages", 1, "maximum number of feed pages to fetch")
	reviewsCmd.Flags().IntVar(&reviewsStars, "stars", 0, "only reviews with this star rating (1-5)")
	rootCmd.AddCommand(reviewsCmd)
}

var reviewsCmd = &cobra.Command{
	Use:   "reviews <user-id>",
	Short: "Prints a seller's reviews feed.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		userID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatal(err)
		}
		reviews, err := client.GetSellerReviews(cmd.Context(), funpay.ReviewsRequest{
			UserID: userID,
			Pages:  reviewsPages,
			Stars:  reviewsStars,
		})
		if err != nil {
			log.Fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Game", "Price", "Stars", "Sender", "Date", "Text"})
		t.AppendRows(lo.Map(reviews, func(r funpay.SellerReview, _ int) table.Row {
			sender, date := "", ""
			if r.Sender != nil {
				sender = r.Sender.Username
				date = r.Sender.CreatedAt.Format(time.DateOnly)
			}
			return table.Row{r.GameTitle, r.Price, r.Stars, sender, date, r.Text}
		}))
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
