package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/povarna/lowlevel-labs/internal/arrays"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage:
  arrays swap <a> <b>       print the two values exchanged
  arrays seq <n>            print a dynamic array of n elements
  arrays table <rows> <cols> print a rows x cols multiplication table`

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	args, err := parseInts(os.Args[2:])
	if err != nil {
		log.Fatal().Err(err).Msg("Arguments must be integers")
	}

	switch os.Args[1] {
	case "swap":
		if len(args) != 2 {
			fmt.Println("This program takes two command line arguments.")
			os.Exit(1)
		}
		a, b := args[0], args[1]
		arrays.Swap(&a, &b)
		fmt.Printf("a=%d b=%d\n", a, b)
	case "seq":
		if len(args) != 1 {
			fmt.Println("This program takes one command line argument.")
			os.Exit(1)
		}
		for _, v := range arrays.Sequence(args[0]) {
			fmt.Println(v)
		}
	case "table":
		if len(args) != 2 {
			fmt.Println("This program takes two command line arguments.")
			os.Exit(1)
		}
		for i, row := range arrays.Table(args[0], args[1]) {
			for j, v := range row {
				fmt.Printf("Element at position [%d][%d]: %d\n", i, j, v)
			}
		}
	default:
		fmt.Println(usage)
		os.Exit(1)
	}
}

func parseInts(raw []string) ([]int, error) {
	out := make([]int, 0, len(raw))
	for _, s := range raw {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}
