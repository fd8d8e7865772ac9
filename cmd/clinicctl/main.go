// Command clinicctl runs the clinic dashboard server and its terminal
// client.
//
// @title        IMAGE EHR Clinic Dashboard
// @version      1.0.0
// @description  Staff login, server-rendered clinic dashboard and bearer-token JSON API.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "clinicctl",
	Short: "IMAGE EHR clinic dashboard",
	Long: `clinicctl serves the IMAGE EHR clinic dashboard and talks to it from a terminal.

Run "clinicctl serve" to start the HTTP server, "clinicctl seed" to create the
demo clinics and accounts, and "clinicctl dashboard" for the interactive client.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(serveCmd, seedCmd, loginCmd, logoutCmd, whoamiCmd, dashboardCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func logLevel(configured string) string {
	if verbose {
		return "debug"
	}
	return configured
}
