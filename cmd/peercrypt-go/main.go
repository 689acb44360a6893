package main

import (
	"log"

	"github.com/peerwire/peercrypt-go/cmd/peercrypt-go/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		log.Fatal(err)
	}
}
