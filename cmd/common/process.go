// Package common contains shared functionality for command handlers
package common

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"fjacquet/financas/internal/logging"
)

// Prompt is printed before each line read by RunChat.
const Prompt = "> "

// Processor turns one chat message into its reply.
type Processor interface {
	Process(ctx context.Context, message string) (string, error)
}

// ProcessMessage sends message through p and writes the reply to out.
func ProcessMessage(ctx context.Context, p Processor, message string, out io.Writer) error {
	reply, err := p.Process(ctx, message)
	if err != nil {
		return fmt.Errorf("error processing message: %w", err)
	}
	_, err = fmt.Fprintln(out, reply)
	return err
}

// RunChat reads one message per line from in and answers each on out. It
// stops at end of input, on an exit word or when ctx is cancelled. Blank
// lines are skipped.
func RunChat(ctx context.Context, p Processor, in io.Reader, out io.Writer, log logging.Logger) error {
	if log == nil {
		log = logging.Discard()
	}
	scanner := bufio.NewScanner(in)
	count := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(out, Prompt)
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if isExit(line) {
			break
		}
		if err := ProcessMessage(ctx, p, line, out); err != nil {
			return err
		}
		fmt.Fprintln(out)
		count++
	}
	fmt.Fprintln(out)
	log.Debug("Chat session ended", logging.F(logging.FieldCount, count))
	return scanner.Err()
}

func isExit(line string) bool {
	switch strings.ToLower(line) {
	case "sair", "exit", "quit":
		return true
	}
	return false
}
