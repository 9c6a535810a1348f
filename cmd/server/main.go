// Command server runs the BizDesk dashboard API without the CLI wrapper.
// Equivalent to `bizdesk serve`.
package main

import (
	"log"

	"github.com/shashiranjanraj/bizdesk/internal/server"

	_ "github.com/shashiranjanraj/bizdesk/database/migrations"
	_ "github.com/shashiranjanraj/bizdesk/database/seeders"
)

func main() {
	if err := server.Start(); err != nil {
		log.Fatal(err)
	}
}
