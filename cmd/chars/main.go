package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/lowlevel-labs/internal/chars"
	"github.com/povarna/lowlevel-labs/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	max := cfg.Reader.MaxEntries

	fmt.Printf("This program reads in a number, then a series of keyboard characters. The number\n")
	fmt.Printf("indicates how many characters follows. The number can be no higher than %d.\n", max)
	fmt.Print("Please enter the number of entries, followed by the enter/return key: ")

	in := bufio.NewReader(os.Stdin)
	line, err := in.ReadString('\n')
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read entry count")
	}

	entries := max
	if trimmed := strings.TrimSpace(line); trimmed != "" {
		entries, err = strconv.Atoi(trimmed)
		if err != nil || entries < 1 || entries > max {
			fmt.Printf("Specified number of characters is invalid. It must be between 1 and %d.\n", max)
			return
		}
	}

	fmt.Printf("enter the %d characters: ", entries)
	fmt.Println("The keyboard values are: ")
	if _, err := chars.Echo(in, os.Stdout, entries); err != nil {
		log.Fatal().Err(err).Msg("Failed to echo characters")
	}
}
