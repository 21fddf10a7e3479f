package cmd

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"funpaygo/lib/scrapers/funpay"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(raiseCmd)
}

var raiseCmd = &cobra.Command{
	Use:   "raise <game-id> <lot-id>",
	Short: "Raises all of the account's offers in a lot (requires a golden key).",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		gameID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			log.Fatal(err)
		}
		lotID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			log.Fatal(err)
		}

		err = client.RaiseAllOffers(cmd.Context(), gameID, lotID)
		if errors.Is(err, funpay.ErrAlreadyRaised) {
			fmt.Println("offers were raised recently, try again later")
			return
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("offers raised")
	},
}
