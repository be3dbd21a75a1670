package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pageza/recipecard/internal/card"
	"github.com/pageza/recipecard/internal/fetch"
)

var (
	extractCard      bool
	extractPublisher string
)

var extractCmd = &cobra.Command{
	Use:   "extract <url>",
	Short: "Extract the recipe from a publisher page",
	Long: `Fetches the page once and prints its schema.org Recipe as JSON.
The url may omit the scheme or be a path such as /recipes/tomato-soup,
which is resolved against the publisher's www host.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractCard, "card", false, "print a readable recipe card instead of JSON")
	extractCmd.Flags().StringVar(&extractPublisher, "publisher", "", "publisher domain to allow (overrides PUBLISHER_DOMAIN)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	svc, publisher, err := newExtractService(extractPublisher)
	if err != nil {
		return fmt.Errorf("failed to configure extraction: %w", err)
	}

	target, err := fetch.NormalizeInput(args[0], "https://www."+publisher)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, err := svc.Extract(ctx, target)
	if err != nil {
		return fmt.Errorf("extract %s: %w", target, err)
	}

	if extractCard {
		printCard(cmd.OutOrStdout(), card.Build(out.Recipe, out.URL))
		return nil
	}

	data, err := json.MarshalIndent(out.Recipe, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recipe: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func printCard(w io.Writer, c card.Card) {
	fmt.Fprintf(w, "%s\n\n%s\n\n", c.Name, c.Description)
	fmt.Fprintf(w, "Serves: %s\n", c.Yield)
	fmt.Fprintf(w, "Prep:   %s\n", c.PrepTime)
	fmt.Fprintf(w, "Cook:   %s\n", c.CookTime)
	fmt.Fprintf(w, "Total:  %s\n", c.TotalTime)
	fmt.Fprintf(w, "By:     %s\n", c.Author)

	fmt.Fprint(w, "\nIngredients\n")
	if len(c.Ingredients) == 0 {
		fmt.Fprintf(w, "  %s\n", card.Placeholder)
	}
	for _, ing := range c.Ingredients {
		fmt.Fprintf(w, "  - %s\n", ing)
	}

	fmt.Fprint(w, "\nMethod\n")
	if len(c.Instructions) == 0 {
		fmt.Fprintf(w, "  %s\n", card.Placeholder)
	}
	for i, step := range c.Instructions {
		fmt.Fprintf(w, "  %d. %s\n", i+1, step)
	}

	if c.SourceURL != "" {
		fmt.Fprintf(w, "\nSource: %s\n", c.SourceURL)
	}
}
