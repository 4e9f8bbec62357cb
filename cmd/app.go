// Package cmd implements the CLI application to manage a credit book.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/murugan/khata"
)

// config carries the application defaults, overridable from the environment
// or a .env file next to the book.
type config struct {
	File        string `env:"KHATA_FILE" envDefault:"khata.json"`
	CountryCode string `env:"KHATA_COUNTRY_CODE" envDefault:"91"`
}

func loadConfig() config {
	// A missing .env file is the normal case.
	_ = godotenv.Load()
	var c config
	if err := env.Parse(&c); err != nil {
		log.Printf("warning, ignoring environment: %v", err)
		c = config{File: "khata.json", CountryCode: khata.DefaultCountryCode}
	}
	return c
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var cfg = loadConfig()

var bookFile = flag.String("file", cfg.File, "Path to the credit book JSON document")

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&addCustomerCmd{},
	&creditCmd{},
	&payCmd{},
	&purchaseCmd{},
	&rmPurchaseCmd{},
	&expenseCmd{},
	&rmExpenseCmd{},
	&cashCmd{},
	&dashboardCmd{},
	&statementCmd{},
	&recentCmd{},
	&pocketsCmd{},
	&exportCmd{},
	&importCmd{},
	&templateCmd{},
	&remindCmd{},
	&getCmd{},
	&checkCmd{},
	&clearCmd{},
	&topicCmd{},
	&assistCmd{},
}

// openStore opens the application's book file.
func openStore() (*khata.Store, error) {
	return khata.Open(*bookFile)
}

// saveStore persists the book and reports failures on stderr.
func saveStore(s *khata.Store) subcommands.ExitStatus {
	if err := s.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book %q: %v\n", s.Path(), err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// warnIfNegative reports a pocket that went below zero. The mutation itself
// is never blocked.
func warnIfNegative(book *khata.Book, p khata.Pocket) {
	cash := book.Cash()
	if bal := cash.Balance(p); bal.IsNegative() {
		fmt.Fprintf(os.Stderr, "Warning: pocket %s is negative (%s)\n", p, bal)
	}
}

// parseAmount parses a strictly positive amount from a flag value.
func parseAmount(s string) (khata.Money, error) {
	m, err := khata.ParseMoney(s)
	if err != nil {
		return khata.Money{}, err
	}
	if !m.IsPositive() {
		return khata.Money{}, fmt.Errorf("amount must be positive, got %s", m)
	}
	return m, nil
}

// parseDateFlag parses an optional -date flag, empty means today.
func parseDateFlag(s string) (khata.Date, error) {
	if s == "" {
		return khata.Today(), nil
	}
	return khata.ParseDate(s)
}
