package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
)

// main - plays one game in the terminal, reading commands from stdin.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	s := newSession(os.Stdout)
	fmt.Println(helpText)
	s.render()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}

		quit, err := s.execute(scanner.Text())
		if err != nil {
			fmt.Println(err)
			continue
		}

		if quit {
			return
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Error("failed to read input", "error", err)
		os.Exit(1)
	}
}
