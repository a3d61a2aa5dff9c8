package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/reversigame/internal/model"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Play a local game against the rules engine",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGameMovesCmd())
	cmd.AddCommand(newGameCheckCmd())
	cmd.AddCommand(newGamePlayCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new game from the standard opening",
		RunE: func(cmd *cobra.Command, args []string) error {
			g := &LocalGame{
				Board: model.InitialBoard().Grid(),
				Turn:  int(model.ColorDark),
			}
			if err := cfg.SaveGame(g); err != nil {
				return fmt.Errorf("failed to save game: %w", err)
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(*g)
			return nil
		},
	}
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the board, disc counts and whether the game is over",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := cfg.LoadGame()
			if err != nil {
				return err
			}

			var status GameStatus
			req := map[string]any{"board": g.Board}
			if err := client.Post(cmd.Context(), "/api/v1/games/status", req, &status); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(GameView{Game: *g, Status: status})
			return nil
		},
	}
}

func newGameMovesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moves",
		Short: "List legal moves for the side to move",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := cfg.LoadGame()
			if err != nil {
				return err
			}

			result, err := legalMoves(cmd, g)
			if err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGameCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <row> <col>",
		Short: "Check whether the side to move may play at a cell",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, col, err := parseCell(args)
			if err != nil {
				return err
			}

			g, err := cfg.LoadGame()
			if err != nil {
				return err
			}

			var result Legality
			req := map[string]any{"board": g.Board, "row": row, "col": col, "color": g.Turn}
			if err := client.Post(cmd.Context(), "/api/v1/moves/check", req, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output, cmd.OutOrStdout()).Print(result)
			return nil
		},
	}
}

func newGamePlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play <row> <col>",
		Short: "Play a move for the side to move",
		Long: `Play a move for the side to move.

When the opponent is left without a legal move they pass and the same side
moves again. The game ends when neither side can move.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, col, err := parseCell(args)
			if err != nil {
				return err
			}

			g, err := cfg.LoadGame()
			if err != nil {
				return err
			}

			var outcome MoveOutcome
			req := map[string]any{"board": g.Board, "row": row, "col": col, "color": g.Turn}
			if err := client.Post(cmd.Context(), "/api/v1/moves", req, &outcome); err != nil {
				return err
			}

			mover := g.Turn
			g.Board = outcome.Board
			g.Turn = outcome.NextColor

			result := PlayResult{Game: *g}
			if !outcome.HasValidMove {
				var status GameStatus
				if err := client.Post(cmd.Context(), "/api/v1/games/status", map[string]any{"board": g.Board}, &status); err != nil {
					return err
				}
				if status.Terminal {
					result.Status = &status
				} else {
					result.Passed = outcome.NextColor
					g.Turn = mover
					result.Game.Turn = mover
				}
			}

			if err := cfg.SaveGame(g); err != nil {
				return fmt.Errorf("failed to save game: %w", err)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)

			if cfg.Verbose && result.Status == nil {
				moves, err := legalMoves(cmd, g)
				if err != nil {
					return err
				}
				out.Print(moves)
			}
			return nil
		},
	}
}

func legalMoves(cmd *cobra.Command, g *LocalGame) (LegalMoves, error) {
	var result LegalMoves
	req := map[string]any{"board": g.Board, "color": g.Turn}
	err := client.Post(cmd.Context(), "/api/v1/moves/legal", req, &result)
	return result, err
}

func parseCell(args []string) (int, int, error) {
	row, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row %q", args[0])
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid column %q", args[1])
	}
	return row, col, nil
}
