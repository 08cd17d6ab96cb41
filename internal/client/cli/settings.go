package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/paclead/pkg/api"
)

func newSettingsCmd(get func() *Cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"configuracoes"},
		Short:   "Show or change the AI tone",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the AI tone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runSettingsShow(cmd.Context())
		},
	}

	set := &cobra.Command{
		Use:   "set [tone]",
		Short: "Change the AI tone",
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runSettingsSet(cmd.Context(), strings.Join(args, " "))
		},
	}

	cmd.AddCommand(show, set)
	return cmd
}

func (c *Cli) runSettingsShow(ctx context.Context) error {
	token, err := c.requireAuth(ctx)
	if err != nil {
		return err
	}

	settings, err := c.catalog.GetSettings(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	c.io.Println("=== AI Settings ===")
	c.io.Println()
	if settings.AITone == "" {
		c.io.Println("AI tone: (not set)")
		return nil
	}
	c.io.Printf("AI tone: %s\n", settings.AITone)

	return nil
}

func (c *Cli) runSettingsSet(ctx context.Context, tone string) error {
	token, err := c.requireAuth(ctx)
	if err != nil {
		return err
	}

	if strings.TrimSpace(tone) == "" {
		current, err := c.catalog.GetSettings(ctx, token)
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		if current.AITone != "" {
			c.io.Printf("Current AI tone: %s\n", current.AITone)
		}

		tone, err = c.io.ReadInput("New AI tone: ")
		if err != nil {
			return fmt.Errorf("failed to read tone: %w", err)
		}
	}

	tone = strings.TrimSpace(tone)
	if tone == "" {
		return fmt.Errorf("AI tone cannot be empty")
	}

	settings, err := c.catalog.UpdateSettings(ctx, token, api.Settings{AITone: tone})
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	c.io.Println("✓ Settings saved")
	c.io.Printf("AI tone: %s\n", settings.AITone)

	return nil
}
