package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameGuessCmd())
	cmd.AddCommand(newGameFinishCmd())
	cmd.AddCommand(newGamePlayCmd())

	return cmd
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start today's game",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result StartResult

			if err := client.Post("/api/v1/game/start", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGuessCmd() *cobra.Command {
	var session string
	var clueIndex int

	cmd := &cobra.Command{
		Use:   "guess <text>",
		Short: "Submit a guess for the current game",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"session_id": session,
				"guess":      strings.Join(args, " "),
				"clue_index": clueIndex,
			}
			var result GuessResult

			if err := client.Post("/api/v1/game/guess", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&session, "session", "", "Game session ID (required)")
	cmd.Flags().IntVar(&clueIndex, "clue", 0, "Index of the clue being answered")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}

func newGameFinishCmd() *cobra.Command {
	var session, name string

	cmd := &cobra.Command{
		Use:   "finish",
		Short: "Finish the game and record the score",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"session_id": session,
				"name":       name,
			}
			var result FinishResult

			if err := client.Post("/api/v1/game/finish", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&session, "session", "", "Game session ID (required)")
	cmd.Flags().StringVar(&name, "name", "", "Leaderboard display name")
	_ = cmd.MarkFlagRequired("session")

	return cmd
}

func newGamePlayCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play today's game interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			var start StartResult
			if err := client.Post("/api/v1/game/start", nil, &start); err != nil {
				return err
			}

			out := NewOutput("text")
			out.Print(start)

			scanner := bufio.NewScanner(os.Stdin)
			clueIndex := 0

			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				guess := strings.TrimSpace(scanner.Text())
				if guess == "" {
					continue
				}

				req := map[string]any{
					"session_id": start.SessionID,
					"guess":      guess,
					"clue_index": clueIndex,
				}
				var result GuessResult
				if err := client.Post("/api/v1/game/guess", req, &result); err != nil {
					return err
				}

				out.Print(result)
				if result.Correct || result.GameOver {
					break
				}
				clueIndex = result.ClueIndex + 1
			}

			finishReq := map[string]string{
				"session_id": start.SessionID,
				"name":       name,
			}
			var finish FinishResult
			if err := client.Post("/api/v1/game/finish", finishReq, &finish); err != nil {
				return err
			}

			fmt.Println()
			out.Print(finish)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Leaderboard display name")

	return cmd
}
