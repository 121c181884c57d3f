package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"priests-devils/river"
)

var plainOutput bool

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print the shortest solution from the opening position",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger := cfg.Logger()
		totals := cfg.Totals()
		start := river.Start(totals)
		result, err := river.Solve(totals, start)
		if err != nil {
			logger.Warn("no solution", "priests", totals.Priests, "devils", totals.Devils, "expanded", result.Expanded)
			return fmt.Errorf("%d priests and %d devils: %w", totals.Priests, totals.Devils, err)
		}
		logger.Debug("solved", "moves", len(result.Path), "expanded", result.Expanded)
		return writeSolution(cmd.OutOrStdout(), start, result, plainOutput, logger)
	},
}

func init() {
	solveCmd.Flags().BoolVar(&plainOutput, "plain", false, "print without colors or boxes")
}

var errBrokenPath = errors.New("solver returned a non-adjacent step")

// solutionMoves pairs every step of the path with the move that reaches it.
func solutionMoves(start river.Position, path []river.Position, logger *slog.Logger) ([]river.Move, error) {
	moves := make([]river.Move, 0, len(path))
	prev := start
	for _, p := range path {
		m, ok := river.MoveBetween(prev, p)
		if !ok {
			logger.Error(errBrokenPath.Error(), "from", prev.String(), "to", p.String())
			return nil, fmt.Errorf("%w: %s -> %s", errBrokenPath, prev, p)
		}
		moves = append(moves, m)
		prev = p
	}
	return moves, nil
}

func writeSolution(w io.Writer, start river.Position, result river.Solution, plain bool, logger *slog.Logger) error {
	moves, err := solutionMoves(start, result.Path, logger)
	if err != nil {
		return err
	}

	if plain {
		fmt.Fprintf(w, "0. %s\n", start)
		for i, p := range result.Path {
			fmt.Fprintf(w, "%d. %s -> %s\n", i+1, moves[i], p)
		}
		_, err := fmt.Fprintf(w, "solved in %d crossings (%d positions expanded)\n", len(result.Path), result.Expanded)
		return err
	}

	fmt.Fprintln(w, styles.Title.Render(fmt.Sprintf("Solution for %d priests and %d devils", start.PriestsLeft, start.DevilsLeft)))
	fmt.Fprintln(w, renderRiver(start, nil, 8))
	prev := start
	for i, p := range result.Path {
		fmt.Fprintln(w, styles.Muted.Render(fmt.Sprintf("%2d. send %s %s", i+1, moves[i], prev.Boat.Opposite())))
		fmt.Fprintln(w, renderRiver(p, nil, 8))
		prev = p
	}
	_, err = fmt.Fprintln(w, styles.Box.Render(styles.Success.Render(fmt.Sprintf("Solved in %d crossings", len(result.Path)))))
	return err
}
