package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: worker purge")
	}

	switch os.Args[1] {
	case "purge":
		RunPurge()
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}
