// Package prompt asks the operator for the inputs of a batch run.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrNoInput is returned when input ends before an answer is given.
var ErrNoInput = errors.New("no input")

// Prompter reads answers line by line.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New returns a Prompter reading from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask writes question and returns the trimmed answer.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", ErrNoInput
	}
	return strings.TrimSpace(line), nil
}

// AddressFile asks for the address list path.
func (p *Prompter) AddressFile(resuming bool) (string, error) {
	question := "Enter the path to the Bitcoin address file: "
	if resuming {
		question = "Enter the path to the Bitcoin address file (same file as before): "
	}
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
	}
}

// TxCount asks for the number of transactions to fetch per address until a value of at
// least 1 is given.
func (p *Prompter) TxCount() (int, error) {
	for {
		answer, err := p.Ask("Enter the number of transactions to fetch (1-infinite): ")
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(answer)
		switch {
		case err != nil:
			_, _ = fmt.Fprintln(p.out, "Invalid input. Please enter a valid number.")
		case n < 1:
			_, _ = fmt.Fprintln(p.out, "Please enter a number greater than or equal to 1.")
		default:
			return n, nil
		}
	}
}
