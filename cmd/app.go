// Package cmd implements the CLI application to manage a double-entry
// ledger: posting entries, running reports, importing and exporting the
// journal, and scheduling recurring entries.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aesfinancelab/autogaap"
	"github.com/aesfinancelab/autogaap/date"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&postCmd{}, "journal")
	c.Register(&listCmd{}, "journal")
	c.Register(&importCmd{}, "journal")
	c.Register(&exportCmd{}, "journal")
	c.Register(&clearCmd{}, "journal")
	c.Register(&sampleCmd{}, "journal")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&balanceCmd{}, "reports")
	c.Register(&statementCmd{}, "reports")
	c.Register(&depreciationCmd{}, "reports")

	c.Register(&recurringAddCmd{}, "recurring")
	c.Register(&recurringRunCmd{}, "recurring")

	c.Register(&assistCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storePath = flag.String("store", envOr("AUTOGAAP_STORE", ".autogaap"), "Path to the ledger store folder")
var fallbackURL = flag.String("fallback-url", envOr("AUTOGAAP_FALLBACK_URL", ""), "URL of the fallback ledger dataset used to seed an empty store")

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// OpenStore opens the app ledger store and logs every change made through it.
func OpenStore() (*autogaap.Store, error) {
	store, err := autogaap.OpenStore(*storePath)
	if err != nil {
		return nil, err
	}
	store.Subscribe(func(n autogaap.Notification, entries []autogaap.JournalEntry) {
		switch n {
		case autogaap.LedgerHydrated:
			log.Printf("ledger seeded with %d entries", len(entries))
		default:
			log.Printf("ledger now holds %d entries", len(entries))
		}
	})
	return store, nil
}

// LoadEntries opens the store and returns its entries, seeding an empty
// store from the fallback dataset or the embedded sample first, and
// generating any recurring entries due today.
func LoadEntries() ([]autogaap.JournalEntry, error) {
	store, err := OpenStore()
	if err != nil {
		return nil, err
	}
	entries, err := store.Hydrate(autogaap.Daily(), *fallbackURL)
	if err != nil {
		return nil, err
	}
	generated, err := store.RunRecurring(date.Today())
	if err != nil {
		log.Printf("recurring check: %v", err)
		return entries, nil
	}
	if len(generated) > 0 {
		return store.Entries(), nil
	}
	return entries, nil
}

// printMarkdown renders markdown for the terminal. It falls back to the raw
// text when the renderer is unavailable.
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
