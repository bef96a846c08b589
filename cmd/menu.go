package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/huangsam/speedcheck/internal/contract"
)

// menuCmd runs the interactive menu loop.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the interactive menu.",
	Long: `Run speedcheck as an interactive numbered menu.

Choices:
  1. Run speed test
  2. View improvement tips
  3. Visualize current results
  4. Visualize historical results
  5. Exit

Invalid choices re-prompt. Each action maps to one of the scriptable
subcommands (run, tips, chart current, chart history).`,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runMenu(os.Stdin, cfg); err != nil {
			contract.LogFatal("Menu failed", err)
		}
	},
}

// runMenu reads menu choices from in until exit or EOF.
func runMenu(in io.Reader, cfg *contract.Config) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Println()
		fmt.Println("==== Internet Speed Test Menu ====")
		fmt.Println("1. Run speed test")
		fmt.Println("2. View improvement tips")
		fmt.Println("3. Visualize current results")
		fmt.Println("4. Visualize historical results")
		fmt.Println("5. Exit")
		fmt.Print("Enter your choice (1-5): ")

		if !scanner.Scan() {
			// EOF counts as exit so piped input terminates cleanly
			fmt.Println()
			return scanner.Err()
		}

		var actionErr error
		switch strings.TrimSpace(scanner.Text()) {
		case "1":
			actionErr = executeRun(rootCtx, cfg)
		case "2":
			actionErr = executeTips(rootCtx, cfg)
		case "3":
			actionErr = executeChartCurrent(rootCtx, cfg)
		case "4":
			actionErr = executeChartHistory(rootCtx, cfg)
		case "5":
			fmt.Println("Goodbye!")
			return nil
		default:
			fmt.Println("Invalid choice. Please enter a number between 1 and 5.")
			continue
		}

		if actionErr != nil {
			// Keep the menu alive; a failed action is not fatal here
			contract.LogWarn("action failed", actionErr)
		}
	}
}
