package main

import (
	"log"
	"os"

	"github.com/Keoroanthony/go-crm/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
