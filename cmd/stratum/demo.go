package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/stratum"
	"github.com/aretw0/stratum/internal/logging"
	"github.com/aretw0/stratum/pkg/domain"
	logmw "github.com/aretw0/stratum/pkg/middleware/logging"
)

// counterState is the demo's whole application state.
type counterState struct {
	Value int
}

func counterReducer(s counterState, a domain.Action) counterState {
	switch a.Type {
	case "counter/increment":
		s.Value++
	case "counter/decrement":
		s.Value--
	}
	return s
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run an interactive counter backed by a stratum store",
	Long:  `Starts a REPL around a counter store. Type "+" to increment, "-" to decrement, "q" to quit. Every dispatch is traced through the logging middleware.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		levelName, _ := cmd.Flags().GetString("log-level")
		var level slog.Level
		if err := level.UnmarshalText([]byte(levelName)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", levelName, err)
		}
		logger := logging.New(level)

		store, err := stratum.New(counterReducer,
			stratum.WithLogger[counterState](logger),
			stratum.WithEnhancer[counterState](
				stratum.ApplyMiddleware(logmw.New[counterState](logger)),
			),
		)
		if err != nil {
			return fmt.Errorf("create store: %w", err)
		}

		unsubscribe, err := store.Subscribe(func() {
			state, stateErr := store.State()
			if stateErr != nil {
				return
			}
			fmt.Printf("count = %d\n", state.Value)
		})
		if err != nil {
			return fmt.Errorf("subscribe: %w", err)
		}
		defer unsubscribe()

		fmt.Println("--- stratum counter demo ---")
		fmt.Println(`"+" increments, "-" decrements, "q" quits`)

		reader := bufio.NewReader(os.Stdin)
		for {
			fmt.Print("> ")
			line, readErr := reader.ReadString('\n')
			if readErr != nil {
				return nil // EOF ends the demo
			}

			switch strings.TrimSpace(line) {
			case "+":
				if _, err := store.Dispatch(domain.Action{Type: "counter/increment"}); err != nil {
					return err
				}
			case "-":
				if _, err := store.Dispatch(domain.Action{Type: "counter/decrement"}); err != nil {
					return err
				}
			case "q", "quit", "exit":
				fmt.Println("Bye!")
				return nil
			default:
				fmt.Println(`unknown input (use "+", "-", or "q")`)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
