// Package app implements the main application commands.
package app

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gofolio-admin",
	Short: "GoFolio-Admin is a web front end for a portfolio content API",
	Long: `GoFolio-Admin is a web front end for a portfolio content API
that serves the public blog, project and about pages and provides a
login-protected dashboard for managing that content.`,
	Args: cobra.OnlyValidArgs,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
