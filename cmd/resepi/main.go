// Resepi is a terminal recipe browser.
//
// Usage:
//
//	resepi [browse] [--recipes file.yaml] [--type food|beverage] [--voice] [--sound]
//	resepi shell
//	resepi list [--format text|yaml]
//	resepi ingredients
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	envFile     string
	recipesFile string
	recipeType  string
	pageSize    int
	chipCount   int
	logFile     string
	verbose     bool
	quiet       bool
	voice       bool
	sound       bool
	listFormat  string
)

var rootCmd = &cobra.Command{
	Use:   "resepi",
	Short: "Browse Indonesian recipes in the terminal",
	Long: `Resepi lists recipes as a paginated card grid you can search by name
and filter by ingredient. Open a card to read its ingredients and steps,
and save the ones you like to favourites.

Settings come from .env and RESEPI_* environment variables; flags win.`,
	SilenceUsage: true,
	RunE:         runBrowse,
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive browser (default)",
	RunE:  runBrowse,
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Line-oriented browser reading commands from stdin",
	RunE:  runShell,
}

var listCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "Print recipes, optionally filtered by name",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

var ingredientsCmd = &cobra.Command{
	Use:   "ingredients",
	Short: "Print the normalized ingredient index",
	RunE:  runIngredients,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file to load before the environment")
	pf.StringVarP(&recipesFile, "recipes", "r", "", "YAML recipe collection (watched for changes)")
	pf.StringVarP(&recipeType, "type", "t", "", "show only food, beverage or all")
	pf.IntVar(&pageSize, "page-size", 0, "cards per page")
	pf.IntVar(&chipCount, "chips", 0, "ingredient chips in the filter panel")
	pf.StringVar(&logFile, "log-file", "", "file to write logs to (\"stderr\" for the console)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVarP(&quiet, "quiet", "q", false, "disable logging")

	for _, c := range []*cobra.Command{rootCmd, browseCmd} {
		c.Flags().BoolVar(&voice, "voice", false, "enable push-to-talk dictation via local Whisper (ctrl+r)")
		c.Flags().BoolVar(&sound, "sound", false, "play a chime as cards appear")
	}
	listCmd.Flags().StringVar(&listFormat, "format", "text", "output format: text or yaml")

	rootCmd.AddCommand(browseCmd, shellCmd, listCmd, ingredientsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
