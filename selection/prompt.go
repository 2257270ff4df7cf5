package selection

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cloudx-io/endoscan/core"
)

// Prompter collects a filter config from an interactive menu.
type Prompter struct {
	in            *bufio.Scanner
	out           io.Writer
	detailFilters bool
}

// NewPrompter creates a prompter reading answers from in and writing menus to out.
// With detailFilters off only the price menu is shown.
func NewPrompter(in io.Reader, out io.Writer, detailFilters bool) *Prompter {
	return &Prompter{
		in:            bufio.NewScanner(in),
		out:           out,
		detailFilters: detailFilters,
	}
}

// Collect shows the menus once and returns the chosen config.
// Returns io.EOF when input ends before the price menu is answered, and an
// InvalidSelectionError for any unmapped answer.
func (p *Prompter) Collect() (core.FilterConfig, error) {
	printOptions(p.out, "Select an option:", PriceModeOptions)
	answer, err := p.readLine("Choice (1/2/3): ")
	if err != nil {
		return core.FilterConfig{}, err
	}
	mode, err := ParsePriceMode(answer)
	if err != nil {
		return core.FilterConfig{}, err
	}

	cfg := core.FilterConfig{PriceMode: mode}
	if !p.detailFilters {
		return cfg, nil
	}

	answer, err = p.readLine("Maximum mastery rank (empty for no limit): ")
	if err != nil {
		return core.FilterConfig{}, unexpectedEOF(err)
	}
	if cfg.MaxMastery, err = ParseMaxMastery(answer); err != nil {
		return core.FilterConfig{}, err
	}

	printOptions(p.out, "Seller status:", SellerOptions)
	answer, err = p.readLine("Choice (1/2/3): ")
	if err != nil {
		return core.FilterConfig{}, unexpectedEOF(err)
	}
	if cfg.Seller, err = ParseSeller(answer); err != nil {
		return core.FilterConfig{}, err
	}
	return cfg, nil
}

func (p *Prompter) readLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read selection: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.in.Text(), "\r"), nil
}

func printOptions[T any](out io.Writer, title string, options []Option[T]) {
	fmt.Fprintln(out, title)
	for _, opt := range options {
		fmt.Fprintf(out, "%s - %s\n", opt.Key, opt.Label)
	}
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
