package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Options глобальные флаги клиента
type Options struct {
	ServerURL string
	DBPath    string
}

// SetupFunc создает Cli по глобальным флагам
type SetupFunc func(ctx context.Context, opts Options) (*Cli, error)

// NewRootCommand создает корневую команду paclead
func NewRootCommand(version string, defaults Options, setup SetupFunc) *cobra.Command {
	opts := defaults
	var c *Cli

	root := &cobra.Command{
		Use:           "paclead",
		Short:         "Pac Lead console: products, AI settings and chat tester",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			c, err = setup(cmd.Context(), opts)
			if err != nil {
				return fmt.Errorf("failed to initialize client: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.ServerURL, "server", defaults.ServerURL, "Pac Lead server URL")
	root.PersistentFlags().StringVar(&opts.DBPath, "db", defaults.DBPath, "path to local session database")

	// Команды получают Cli лениво: он создается в PersistentPreRunE
	get := func() *Cli { return c }

	root.AddCommand(
		newRegisterCmd(get),
		newLoginCmd(get),
		newLogoutCmd(get),
		newStatusCmd(get),
		newProductsCmd(get),
		newSettingsCmd(get),
		newChatCmd(get),
	)

	return root
}

// Execute выполняет команду с аргументами args.
// closer, полученный при создании Cli, закрывается после выполнения команды.
func Execute(ctx context.Context, args []string, version string, defaults Options, setup func(ctx context.Context, opts Options) (*Cli, io.Closer, error)) error {
	var closer io.Closer
	root := NewRootCommand(version, defaults, func(ctx context.Context, opts Options) (*Cli, error) {
		c, cl, err := setup(ctx, opts)
		closer = cl
		return c, err
	})
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if closer != nil {
		err = errors.Join(err, closer.Close())
	}
	return err
}
