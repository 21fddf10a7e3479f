package main

import (
	"funpaygo/cmd/funpay-cli/cmd"
)

func main() {
	cmd.Execute()
}
