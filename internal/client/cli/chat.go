package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/paclead/internal/client/chat"
)

// exitCommand завершает интерактивный чат
const exitCommand = "/sair"

func newChatCmd(get func() *Cli) *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:     "chat",
		Aliases: []string{"testar"},
		Short:   "Talk to the sales AI",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runChat(cmd.Context(), message)
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "send a single message and exit")
	return cmd
}

func (c *Cli) runChat(ctx context.Context, message string) error {
	if _, err := c.requireAuth(ctx); err != nil {
		return err
	}

	tester := chat.NewTester(c.catalog, c.authService, c.logger)

	if message != "" {
		reply, err := tester.Send(ctx, message)
		if err != nil {
			return err
		}
		c.printMessage(reply)
		return nil
	}

	c.io.Println("=== Chat Tester ===")
	c.io.Printf("Type %s or press Ctrl+D to quit.\n", exitCommand)
	c.io.Println()
	for _, msg := range tester.Transcript().Messages() {
		c.printMessage(msg)
	}

	for {
		text, err := c.io.ReadInput("> ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				c.io.Println()
				return nil
			}
			return fmt.Errorf("failed to read message: %w", err)
		}

		if strings.TrimSpace(text) == exitCommand {
			return nil
		}

		reply, err := tester.Send(ctx, text)
		if err != nil {
			if errors.Is(err, chat.ErrEmptyMessage) {
				continue
			}
			return err
		}
		c.printMessage(reply)
	}
}

func (c *Cli) printMessage(msg chat.Message) {
	who := "IA"
	if msg.IsUser {
		who = "Você"
	}
	c.io.Printf("[%s] %s: %s\n", msg.Timestamp.Format("15:04"), who, msg.Text)
}
