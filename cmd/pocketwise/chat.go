package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harperdean/pocketwise/internal/cli"
	"github.com/harperdean/pocketwise/internal/common"
	"github.com/harperdean/pocketwise/internal/engine"
	"github.com/harperdean/pocketwise/internal/model"
	"github.com/harperdean/pocketwise/internal/money"
	"github.com/harperdean/pocketwise/internal/service"
)

func chatCmd() *cobra.Command {
	var sessionID string

	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Ask a personal finance question",
		Long: `Ask a one-shot question, or start an interactive session when no message
is given. With --session, the transcript is persisted and can be reviewed
with 'pocketwise history'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := slog.Default()

			synth, cleanup, err := initSynthesizer(ctx, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			var store service.HistoryStore
			if sessionID != "" {
				store, err = initStorage(ctx)
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
			}

			if len(args) > 0 {
				return runChatOnce(ctx, synth, store, sessionID, strings.Join(args, " "))
			}
			return runChatInteractive(ctx, synth, store, sessionID)
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "", "session name for persisting the transcript")

	return cmd
}

func runChatOnce(ctx context.Context, synth *engine.Synthesizer, store service.HistoryStore, sessionID, message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("message cannot be empty")
	}

	reply := synth.Synthesize(ctx, message)
	printReply(reply)
	persistExchange(ctx, store, sessionID, message, reply)

	return nil
}

func runChatInteractive(ctx context.Context, synth *engine.Synthesizer, store service.HistoryStore, sessionID string) error {
	fmt.Println(cli.TitleStyle.Render("💰 pocketwise"))
	fmt.Println(cli.SubtleStyle.Render("Ask about budgeting, saving, loans, investing... ('exit' to quit)"))

	reader := cli.NewNonBlockingReader(os.Stdin)

	for {
		fmt.Print(cli.PromptStyle.Render("you> "))

		line, err := reader.ReadLine(ctx)
		switch {
		case errors.Is(err, cli.ErrInputCancelled):
			fmt.Println()
			return nil
		case errors.Is(err, io.EOF):
			fmt.Println()
			return nil
		case err != nil:
			return fmt.Errorf("failed to read input: %w", err)
		}

		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		reply := synth.Synthesize(ctx, line)
		printReply(reply)
		persistExchange(ctx, store, sessionID, line, reply)
	}
}

func printReply(reply model.ChatReply) {
	fmt.Println()
	fmt.Println(cli.ReplyStyle.Render(reply.Text))
	fmt.Println()

	meta := []string{
		"sentiment: " + cli.SentimentStyle(string(reply.Sentiment.Label)).Render(string(reply.Sentiment.Label)),
	}
	if len(reply.Amounts) > 0 {
		formatted := make([]string, len(reply.Amounts))
		for i, amount := range reply.Amounts {
			formatted[i] = money.FormatCurrency(amount)
		}
		meta = append(meta, "amounts: "+strings.Join(formatted, ", "))
	}
	fmt.Println(cli.SubtleStyle.Render(strings.Join(meta, " · ")))

	if reply.Error != "" {
		fmt.Println(cli.WarningStyle.Render("note: degraded reply (" + reply.Error + ")"))
	}
	fmt.Println()
}

// persistExchange records both sides of an exchange. Persistence is best
// effort: failures are logged, never surfaced, so the reply that was
// already produced stands.
func persistExchange(ctx context.Context, store service.HistoryStore, sessionID, input string, reply model.ChatReply) {
	if store == nil {
		return
	}

	userMsg := &model.ChatMessage{
		SessionID: sessionID,
		Role:      model.RoleUser,
		Text:      input,
		Amounts:   reply.Amounts,
		CreatedAt: reply.Timestamp,
	}
	if err := store.SaveMessage(ctx, userMsg); err != nil {
		common.LogError(err, "failed to save user message", common.Fields{"session": sessionID})
		return
	}

	assistantMsg := &model.ChatMessage{
		SessionID: sessionID,
		Role:      model.RoleAssistant,
		Text:      reply.Text,
		Sentiment: reply.Sentiment.Label,
		CreatedAt: reply.Timestamp,
	}
	if err := store.SaveMessage(ctx, assistantMsg); err != nil {
		common.LogError(err, "failed to save assistant message", common.Fields{"session": sessionID})
	}
}
