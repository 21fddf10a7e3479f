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

var transactionsPages int
var transactionsType string

func init() {
	transactionsCmd.Flags().IntVar(&transactionsPages, "pages", 1, "maximum number of feed pages to fetch")
	transactionsCmd.Flags().StringVar(&transactionsType, "type", "", "filter: replenishment, withdraw, order or other")
	rootCmd.AddCommand(transactionsCmd)
}

var transactionsCmd = &cobra.Command{
	Use:   "transactions <user-id>",
	Short: "Prints the account's transactions feed (requires a golden key).",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		userID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatal(err)
		}
		transactions, err := client.GetTransactions(cmd.Context(), funpay.TransactionsRequest{
			UserID: userID,
			Pages:  transactionsPages,
			Type:   funpay.TransactionType(transactionsType),
		})
		if err != nil {
			log.Fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"ID", "Date", "Title", "Payment", "Price", "Status"})
		t.AppendRows(lo.Map(transactions, func(tx funpay.Transaction, _ int) table.Row {
			return table.Row{
				tx.ID,
				tx.Date.Format(time.DateTime),
				tx.Title,
				tx.PaymentNumber,
				tx.Price,
				tx.Status,
			}
		}))
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
