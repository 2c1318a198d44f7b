package main

import (
	"github/chapool/go-signer/cmd"
)

func main() {
	cmd.Execute()
}
