package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platform/headless"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	flagSimSteps  int
	flagSimScript string
	flagSimFrame  bool
	flagSimEvents bool
	flagSimWidth  int
	flagSimHeight int
)

var simCmd = &cobra.Command{
	Use:   "sim [game]",
	Short: "Run a game headless with scripted input",
	Long: `Run the simulation without a terminal and print what happened.

The script is a comma separated list of held keys with optional repeat
counts: L runs left, R runs right, J jumps, "." holds nothing.

  R*30,RJ*5,.*10   run right 30 steps, jump while running 5, idle 10

Steps past the end of the script hold nothing. Without --steps the run
is as long as the script.

Examples:
  platformer sim --script "R*300"
  platformer sim --steps 3600 --script "R*100,RJ*20,R*400" --events
  platformer sim --script "RJ*600" --frame --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimSteps, "steps", 0, "Number of steps to simulate (default: script length)")
	simCmd.Flags().StringVar(&flagSimScript, "script", "", "Input script, e.g. \"R*30,RJ*5,.*10\"")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	simCmd.Flags().BoolVar(&flagSimFrame, "frame", false, "Print the final frame")
	simCmd.Flags().BoolVar(&flagSimEvents, "events", false, "Print every event")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Screen width for the run and the final frame")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Screen height for the run and the final frame")
}

func runSim(_ *cobra.Command, args []string) {
	gameID, err := gameArg(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := configureGame(gameID, flagConfig, flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	script, err := headless.ParseScript(flagSimScript)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSimSteps <= 0 && script.Len() == 0 {
		fmt.Fprintln(os.Stderr, "Error: nothing to simulate, pass --steps or --script")
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("platformer-sim", false)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := core.RuntimeConfig{
		ScreenW:  flagSimWidth,
		ScreenH:  flagSimHeight,
		TickRate: flagFPS,
	}

	runner := headless.NewRunner(game, logger)
	res, runErr := runner.Run(ctx, cfg, script, flagSimSteps)
	if runErr != nil {
		logger.Warn("run interrupted", "error", runErr, "steps", res.Steps)
	}

	printSimResult(game.Title(), res)

	if flagSimFrame {
		fmt.Println()
		fmt.Println(runner.Render(flagSimWidth, flagSimHeight).String())
	}
}

func printSimResult(title string, res headless.Result) {
	fmt.Printf("%s - %d steps\n", title, res.Steps)
	fmt.Printf("Score: %d\n", res.State.Score)
	fmt.Println()

	if flagSimEvents {
		for _, ev := range res.Events {
			fmt.Printf("  %6d  %-10s  %6d  %s\n", ev.Step, ev.Kind, ev.Score, ev.Text)
		}
		if len(res.Events) > 0 {
			fmt.Println()
		}
	}

	if len(res.Counts) == 0 {
		fmt.Println("No events.")
		return
	}

	kinds := make([]string, 0, len(res.Counts))
	for k := range res.Counts {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)

	fmt.Printf("  %-10s  %s\n", "Event", "Count")
	fmt.Printf("  %-10s  %s\n", "-----", "-----")
	for _, k := range kinds {
		fmt.Printf("  %-10s  %d\n", k, res.Counts[core.EventKind(k)])
	}
}
