// Package cli implements the reviewctl commands.
package cli

import "fmt"

// PrintUsage выводит справку по командам
func PrintUsage() {
	fmt.Println("reviewctl - manage the reviewboard server")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  reviewctl [flags] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  list               Show published reviews")
	fmt.Println("  add <text>         Publish a new review")
	fmt.Println("  clear              Remove all reviews (requires admin token)")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -server <url>      Server URL (default: http://localhost:8080)")
	fmt.Println("  -version           Show version information")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  REVIEWBOARD_ADMIN_TOKEN  Admin token for 'clear' (otherwise prompted)")
}
