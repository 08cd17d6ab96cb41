package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/paclead/internal/validation"
	"github.com/iudanet/paclead/pkg/api"
)

// productFlags значения товара из флагов команды
type productFlags struct {
	name        string
	description string
	price       string
}

func (f *productFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "product name")
	cmd.Flags().StringVar(&f.description, "description", "", "product description")
	cmd.Flags().StringVar(&f.price, "price", "", "product price")
}

func newProductsCmd(get func() *Cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"produtos"},
		Short:   "Manage the product catalog",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runProductsList(cmd.Context())
		},
	}

	var addFlags productFlags
	add := &cobra.Command{
		Use:   "add",
		Short: "Add a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runProductsAdd(cmd.Context(), addFlags)
		},
	}
	addFlags.register(add)

	var editFlags productFlags
	edit := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runProductsEdit(cmd.Context(), args[0], editFlags)
		},
	}
	editFlags.register(edit)

	var yes bool
	del := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return get().runProductsDelete(cmd.Context(), args[0], yes)
		},
	}
	del.Flags().BoolVarP(&yes, "yes", "y", false, "delete without confirmation")

	cmd.AddCommand(list, add, edit, del)
	return cmd
}

func (c *Cli) runProductsList(ctx context.Context) error {
	token, err := c.requireAuth(ctx)
	if err != nil {
		return err
	}
	return c.printProducts(ctx, token)
}

func (c *Cli) runProductsAdd(ctx context.Context, flags productFlags) error {
	token, err := c.requireAuth(ctx)
	if err != nil {
		return err
	}

	c.io.Println("=== Add Product ===")
	c.io.Println()

	input, err := c.readProduct(flags, api.Product{})
	if err != nil {
		return err
	}

	product, err := c.catalog.CreateProduct(ctx, token, input)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	c.io.Println()
	c.io.Printf("✓ Product created (ID: %s)\n", product.ID)
	c.io.Println()

	return c.printProducts(ctx, token)
}

func (c *Cli) runProductsEdit(ctx context.Context, id string, flags productFlags) error {
	token, err := c.requireAuth(ctx)
	if err != nil {
		return err
	}

	current, err := c.findProduct(ctx, token, id)
	if err != nil {
		return err
	}

	c.io.Println("=== Edit Product ===")
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	input, err := c.readProduct(flags, *current)
	if err != nil {
		return err
	}

	if _, err := c.catalog.UpdateProduct(ctx, token, id, input); err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Product updated")
	c.io.Println()

	return c.printProducts(ctx, token)
}

func (c *Cli) runProductsDelete(ctx context.Context, id string, yes bool) error {
	token, err := c.requireAuth(ctx)
	if err != nil {
		return err
	}

	if !yes {
		current, err := c.findProduct(ctx, token, id)
		if err != nil {
			return err
		}

		c.io.Println("About to delete:")
		c.io.Printf("  Name:  %s\n", current.Name)
		c.io.Printf("  Price: %s\n", formatPrice(current.Price))
		c.io.Println()

		confirm, err := c.io.ReadInput("Are you sure you want to delete this product? (yes/no): ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		confirm = strings.ToLower(strings.TrimSpace(confirm))
		if confirm != "yes" && confirm != "y" {
			c.io.Println("Deletion cancelled.")
			return nil
		}
	}

	resp, err := c.catalog.DeleteProduct(ctx, token, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	c.io.Printf("✓ %s\n", resp.Message)
	c.io.Println()

	return c.printProducts(ctx, token)
}

func (c *Cli) printProducts(ctx context.Context, token string) error {
	products, err := c.catalog.ListProducts(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	c.io.Println("=== Products ===")
	c.io.Println()

	if len(products) == 0 {
		c.io.Println("No products found.")
		c.io.Println("Run 'paclead products add' to create one.")
		return nil
	}

	for _, p := range products {
		c.io.Printf("[%s] %s  %s\n", p.ID, p.Name, formatPrice(p.Price))
		if p.Description != "" {
			c.io.Printf("      %s\n", p.Description)
		}
	}
	c.io.Println()
	c.io.Printf("Total: %d product(s)\n", len(products))

	return nil
}

func (c *Cli) findProduct(ctx context.Context, token, id string) (*api.Product, error) {
	products, err := c.catalog.ListProducts(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	for i := range products {
		if products[i].ID.String() == id {
			return &products[i], nil
		}
	}
	return nil, fmt.Errorf("product not found with ID: %s", id)
}

// readProduct собирает поля товара из флагов и ввода.
// Пустой ввод оставляет значение из current.
func (c *Cli) readProduct(flags productFlags, current api.Product) (api.ProductInput, error) {
	name, err := c.fieldValue(flags.name, "Name", current.Name)
	if err != nil {
		return api.ProductInput{}, err
	}

	description, err := c.fieldValue(flags.description, "Description", current.Description)
	if err != nil {
		return api.ProductInput{}, err
	}

	currentPrice := ""
	if current.ID != "" {
		currentPrice = strconv.FormatFloat(current.Price, 'f', -1, 64)
	}
	rawPrice, err := c.fieldValue(flags.price, "Price", currentPrice)
	if err != nil {
		return api.ProductInput{}, err
	}

	price, err := parsePrice(rawPrice)
	if err != nil {
		return api.ProductInput{}, err
	}

	if err := validation.ValidateProduct(name, description, price); err != nil {
		return api.ProductInput{}, err
	}

	return api.ProductInput{
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		Price:       price,
	}, nil
}

func (c *Cli) fieldValue(flagValue, label, current string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	prompt := label + ": "
	if current != "" {
		prompt = fmt.Sprintf("%s [%s]: ", label, current)
	}

	value, err := c.io.ReadInput(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}

// parsePrice разбирает цену, допускается десятичная запятая
func parsePrice(raw string) (float64, error) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: price %q is not a number", validation.ErrInvalidInput, raw)
	}
	return price, nil
}

func formatPrice(price float64) string {
	return "R$ " + strconv.FormatFloat(price, 'f', 2, 64)
}
