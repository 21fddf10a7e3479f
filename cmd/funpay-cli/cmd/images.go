package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(uploadImageCmd)
	rootCmd.AddCommand(updateAvatarCmd)
}

var uploadImageCmd = &cobra.Command{
	Use:   "upload-image <file>",
	Short: "Uploads an offer image and prints its id (requires a golden key).",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		image, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		fileID, err := client.AddOfferImage(cmd.Context(), image)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(fileID)
	},
}

var updateAvatarCmd = &cobra.Command{
	Use:   "update-avatar <file>",
	Short: "Replaces the account's avatar (requires a golden key).",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		image, err := os.ReadFile(args[0])
		if err != nil {
			log.Fatal(err)
		}
		if err := client.UpdateAvatar(cmd.Context(), image); err != nil {
			log.Fatal(err)
		}
		fmt.Println("avatar updated")
	},
}
