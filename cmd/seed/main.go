package main

import (
	"flag"
	"log"
	"os"

	"storefront/internal/seed"
)

func main() {
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	out := flag.String("out", "catalog.json", "path to write the demo catalog to")
	flag.Parse()

	if err := seed.WriteFile(*out); err != nil {
		logger.Fatalf("write catalog: %v", err)
	}
	logger.Printf("wrote %d products to %s", len(seed.Products()), *out)
}
