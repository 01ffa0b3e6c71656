package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harperdean/pocketwise/internal/classification"
	"github.com/harperdean/pocketwise/internal/cli"
	"github.com/harperdean/pocketwise/internal/money"
)

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <text>",
		Short: "Analyze a text without generating a reply",
		Long: `Show what the engine extracts from a text: monetary amounts, the expense
category, input validation flags, and (when configured) the sentiment.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			text := strings.Join(args, " ")

			amounts := money.ExtractAmounts(text)
			category := classification.NewClassifier(nil).Categorize(text)
			flags := classification.Validate(text)

			fmt.Println(cli.TitleStyle.Render("Analysis"))

			if len(amounts) > 0 {
				formatted := make([]string, len(amounts))
				for i, amount := range amounts {
					formatted[i] = money.FormatCurrency(amount)
				}
				fmt.Printf("amounts:    %s\n", strings.Join(formatted, ", "))
			} else {
				fmt.Printf("amounts:    %s\n", cli.SubtleStyle.Render("none"))
			}

			fmt.Printf("category:   %s\n", category)
			fmt.Printf("validation: amount=%t percentage=%t date=%t\n",
				flags.HasAmount, flags.HasPercentage, flags.HasDate)

			analyzer, err := initSentiment(ctx, slog.Default())
			if err != nil {
				return err
			}

			sentimentResult, err := analyzer.Analyze(ctx, text)
			if err != nil {
				fmt.Printf("sentiment:  %s\n", cli.SubtleStyle.Render(string(sentimentResult.Label)))
				return nil
			}

			label := string(sentimentResult.Label)
			fmt.Printf("sentiment:  %s (score %.2f, magnitude %.2f)\n",
				cli.SentimentStyle(label).Render(label),
				sentimentResult.Score, sentimentResult.Magnitude)

			return nil
		},
	}
}
