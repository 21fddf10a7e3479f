package cmd

import (
	"fmt"
	"log"

	"funpaygo/lib/scrapers/funpay"

	"github.com/spf13/cobra"
)

var saveOffer funpay.SaveOfferRequest
var saveOfferFields map[string]string

func init() {
	flags := saveOfferCmd.Flags()
	flags.Int64Var(&saveOffer.OfferID, "offer-id", 0, "offer to edit; omit to create a new one")
	flags.Int64Var(&saveOffer.NodeID, "node-id", 0, "lot the offer belongs to")
	flags.BoolVar(&saveOffer.Active, "active", true, "whether the offer is visible")
	flags.BoolVar(&saveOffer.AutoDelivery, "auto-delivery", false, "enable automatic delivery")
	flags.StringSliceVar(&saveOffer.Secrets, "secret", nil, "auto-delivery item, repeatable")
	flags.Int64SliceVar(&saveOffer.ImageIDs, "image-id", nil, "uploaded image id, repeatable")
	flags.Float64Var(&saveOffer.Price, "price", 0, "offer price")
	flags.IntVar(&saveOffer.Amount, "amount", 0, "items in stock")
	flags.StringVar(&saveOffer.SummaryRU, "summary-ru", "", "short description (russian)")
	flags.StringVar(&saveOffer.SummaryEN, "summary-en", "", "short description (english)")
	flags.StringVar(&saveOffer.DescriptionRU, "desc-ru", "", "detailed description (russian)")
	flags.StringVar(&saveOffer.DescriptionEN, "desc-en", "", "detailed description (english)")
	flags.StringVar(&saveOffer.PaymentMessageRU, "payment-msg-ru", "", "message sent after payment (russian)")
	flags.StringVar(&saveOffer.PaymentMessageEN, "payment-msg-en", "", "message sent after payment (english)")
	flags.StringToStringVar(&saveOfferFields, "field", nil, "extra form field as name=value, repeatable")
	_ = saveOfferCmd.MarkFlagRequired("node-id")
	rootCmd.AddCommand(saveOfferCmd)

	deleteOfferCmd.Flags().Int64Var(&saveOffer.OfferID, "offer-id", 0, "offer to delete")
	deleteOfferCmd.Flags().Int64Var(&saveOffer.NodeID, "node-id", 0, "lot the offer belongs to")
	_ = deleteOfferCmd.MarkFlagRequired("offer-id")
	_ = deleteOfferCmd.MarkFlagRequired("node-id")
	rootCmd.AddCommand(deleteOfferCmd)
}

var saveOfferCmd = &cobra.Command{
	Use:   "save-offer",
	Short: "Creates or edits an offer (requires a golden key).",
	Run: func(cmd *cobra.Command, args []string) {
		saveOffer.Fields = saveOfferFields
		if err := client.SaveOffer(cmd.Context(), saveOffer); err != nil {
			log.Fatal(err)
		}
		fmt.Println("offer saved")
	},
}

var deleteOfferCmd = &cobra.Command{
	Use:   "delete-offer",
	Short: "Deletes an offer (requires a golden key).",
	Run: func(cmd *cobra.Command, args []string) {
		err := client.DeleteOffer(cmd.Context(), saveOffer.OfferID, saveOffer.NodeID)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("offer deleted")
	},
}
