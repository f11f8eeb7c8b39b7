// Package session implements the line-oriented command loop that
// drives an indexed list: add, delete, print, help and exit.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=dispatcher.go -destination=mocks/mock_store.go -package=mocks

// Store is the list the session operates on. Indices handed to the
// store are always non-negative; the dispatcher validates sign before
// dispatching.
type Store interface {
	Insert(index, value int)
	Remove(index int) (int, error)
	All() iter.Seq[int]
	Len() int
	Reset()
}

// Dispatcher parses textual commands and applies them to a Store.
type Dispatcher struct {
	store  Store
	out    io.Writer
	prompt string
	logger *zerolog.Logger
}

func NewDispatcher(store Store, out io.Writer, prompt string, logger *zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		store:  store,
		out:    out,
		prompt: prompt,
		logger: logger,
	}
}

// Run reads commands from in until exit, EOF or context cancellation.
// The store is reset on the way out.
func (d *Dispatcher) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			d.store.Reset()
			return err
		}

		fmt.Fprint(d.out, d.prompt)
		if !scanner.Scan() {
			d.store.Reset()
			return scanner.Err()
		}

		if done := d.Execute(scanner.Text()); done {
			d.store.Reset()
			return nil
		}
	}
}

// Execute runs a single command line and reports whether the session
// should end. Malformed commands are reported on the output writer and
// dropped without touching the store.
func (d *Dispatcher) Execute(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return false
	}

	command := tokens[0]
	args := tokens[1:]
	d.logger.Debug().Str("command", command).Int("args", len(args)).Msg("dispatching command")

	switch command {
	case "add":
		d.add(args)
	case "delete":
		d.delete(args)
	case "print":
		d.print()
	case "help":
		d.help()
	case "exit":
		fmt.Fprintln(d.out, "Bye")
		return true
	default:
		fmt.Fprintln(d.out, "Error: The command you entered is not a valid command.")
	}
	return false
}

func (d *Dispatcher) add(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(d.out, "Error: List index and node value must follow this command.")
		return
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(d.out, "Error: List index must follow this command.")
		return
	}
	if index < 0 {
		fmt.Fprintln(d.out, "Error: List index must be greater than or equal to zero.")
		return
	}
	if len(args) == 1 {
		fmt.Fprintln(d.out, "Error: Node value must follow the list index.")
		return
	}

	value, err := strconv.Atoi(args[1])
	if err != nil {
		fmt.Fprintln(d.out, "Error: Node value must follow the list index.")
		return
	}
	if len(args) > 2 {
		fmt.Fprintln(d.out, "Error: Too many arguments were inputted for this command.")
		return
	}

	d.store.Insert(index, value)
	d.logger.Info().Int("index", index).Int("value", value).Int("length", d.store.Len()).Msg("value added")
}

func (d *Dispatcher) delete(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(d.out, "Error: List index must follow this command.")
		return
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintln(d.out, "Error: List index must follow this command.")
		return
	}
	if index < 0 {
		fmt.Fprintln(d.out, "Error: List index must be greater than or equal to zero.")
		return
	}
	if len(args) > 1 {
		fmt.Fprintln(d.out, "Error: Too many arguments were inputted for this command.")
		return
	}

	value, err := d.store.Remove(index)
	if err != nil {
		fmt.Fprintln(d.out, "Error: Invalid index.")
		d.logger.Warn().Int("index", index).Int("length", d.store.Len()).Msg("delete with invalid index")
		return
	}
	d.logger.Info().Int("index", index).Int("value", value).Int("length", d.store.Len()).Msg("value deleted")
}

func (d *Dispatcher) print() {
	var b strings.Builder
	first := true
	for v := range d.store.All() {
		if !first {
			b.WriteString("->")
		}
		b.WriteString(strconv.Itoa(v))
		first = false
	}
	fmt.Fprintln(d.out, b.String())
}

func (d *Dispatcher) help() {
	fmt.Fprint(d.out,
		"exit: quits this tool\n"+
			"help: print all commands\n"+
			"print: print all values in the linked list\n"+
			"add <i> <value>: add value as the ith element\n"+
			"delete <i>: delete the ith element\n")
}
