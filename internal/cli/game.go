package cli

import (
	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Dice game commands",
	}

	cmd.AddCommand(newGameRollCmd())
	cmd.AddCommand(newGameHistoryCmd())
	cmd.AddCommand(newGameClearCmd())

	return cmd
}

func newGameRollCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll",
		Short: "Roll the dice (a total of 7 wins)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Roll

			if err := client.Post("/api/game/roll", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show your roll history",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result RollHistory

			if err := client.Get("/api/game/rolls", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete your roll history",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/game/rolls"); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Roll history cleared.")
			return nil
		},
	}
}
