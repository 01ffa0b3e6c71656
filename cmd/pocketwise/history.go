package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperdean/pocketwise/internal/cli"
	"github.com/harperdean/pocketwise/internal/common"
	"github.com/harperdean/pocketwise/internal/model"
)

func historyCmd() *cobra.Command {
	var (
		sessionID string
		limit     int
		clear     bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show or clear a session transcript",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if clear {
				err := store.ClearHistory(ctx, sessionID)
				switch {
				case errors.Is(err, common.ErrNotFound):
					fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No messages in session %q.", sessionID)))
					return nil
				case err != nil:
					return err
				}
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("Cleared session %q.", sessionID)))
				return nil
			}

			messages, err := store.GetHistory(ctx, sessionID, limit)
			if err != nil {
				return err
			}

			if len(messages) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No messages in session %q.", sessionID)))
				return nil
			}

			for _, msg := range messages {
				prefix := "you"
				style := cli.PromptStyle
				if msg.Role == model.RoleAssistant {
					prefix = "pocketwise"
					style = cli.ReplyStyle
				}

				fmt.Printf("%s %s\n", style.Render(prefix+">"), msg.Text)
				fmt.Println(cli.SubtleStyle.Render(msg.CreatedAt.Format("2006-01-02 15:04:05")))
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&sessionID, "session", "default", "session name")
	cmd.Flags().IntVar(&limit, "limit", 0, "show only the most recent messages (0 = all)")
	cmd.Flags().BoolVar(&clear, "clear", false, "delete the session transcript")

	return cmd
}
