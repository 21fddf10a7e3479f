package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(orderCmd)
}

var orderCmd = &cobra.Command{
	Use:   "order <id>",
	Short: "Prints one of the account's orders (requires a golden key).",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		order, err := client.GetOrder(cmd.Context(), args[0])
		if err != nil {
			log.Fatal(err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendRow(table.Row{"Order", order.ID})
		t.AppendRow(table.Row{"Status", strings.Join(order.Statuses, ", ")})
		t.AppendRow(table.Row{"Price", order.Price})
		t.AppendRow(table.Row{"Summary", order.ShortDescription})
		for key, value := range order.Params {
			t.AppendRow(table.Row{key, value})
		}
		t.AppendRow(table.Row{
			"Counterparty",
			fmt.Sprintf("%s (%d)", order.Other.Username, order.Other.UserID),
		})
		t.SetStyle(table.StyleRounded)
		t.Render()

		if order.DetailedDescription != "" {
			fmt.Println(order.DetailedDescription)
		}
	},
}
