package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/povarna/lowlevel-labs/internal/bits"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	in := bufio.NewScanner(os.Stdin)

	fmt.Print("How many numbers do you need to compute? ")
	count, err := readCount(in)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read computation count")
	}

	for i := 0; i < count; i++ {
		fmt.Println("Please enter number, startIndex, and length in that order,")
		fmt.Println("with each integer separated by a comma and a space: ")

		if !in.Scan() {
			log.Fatal().Err(in.Err()).Msg("Input ended before all computations were read")
		}

		var (
			number        uint64
			start, length int
		)
		if _, err := fmt.Sscanf(in.Text(), "%d, %d, %d", &number, &start, &length); err != nil {
			log.Fatal().Err(err).Str("line", in.Text()).Msg("Failed to parse input line")
		}

		ret, err := bits.Take(number, start, length)
		if err != nil {
			fmt.Printf("Error: %s.\n", err)
			os.Exit(1)
		}
		fmt.Printf("%d, %d, %d = %d\n", number, start, length, ret)
	}
}

func readCount(in *bufio.Scanner) (int, error) {
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("no input")
	}
	count, err := strconv.Atoi(strings.TrimSpace(in.Text()))
	if err != nil {
		return 0, err
	}
	if count < 0 {
		return 0, fmt.Errorf("count must not be negative")
	}
	return count, nil
}
