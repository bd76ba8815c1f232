// Package cli implements the belajarhosting command line client.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/belajarhosting/platform/pkg/client"
)

var (
	cfgFile      string
	outputFormat string
	serverURL    string
	apiClient    *client.Client
)

var rootCmd = &cobra.Command{
	Use:   "belajarhosting",
	Short: "BelajarHosting CLI - hosting, VPS and managed services from the terminal",
	Long: `BelajarHosting CLI provides command-line access to the BelajarHosting
platform for deploying VPS instances, managed hosting, databases and n8n
automation, checking domains, and managing your credit balance. Admin
commands drive the back-office with a separate admin session.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Config commands never touch the server
		if cmd.Parent() != nil && cmd.Parent().Name() == "config" {
			return nil
		}
		switch cmd.Name() {
		case "login", "register", "verify", "resend":
			return initClient()
		}
		if isAdminCommand(cmd) {
			return initAdminClient()
		}
		if isPublicCommand(cmd) {
			return initClient()
		}
		return initAuthenticatedClient()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.belajarhosting/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format: table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server URL (overrides config)")

	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("server_url", rootCmd.PersistentFlags().Lookup("server"))

	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newCatalogCmd())
	rootCmd.AddCommand(newVPSCmd())
	rootCmd.AddCommand(newHostingCmd())
	rootCmd.AddCommand(newDatabaseCmd())
	rootCmd.AddCommand(newAutomationCmd())
	rootCmd.AddCommand(newDomainCmd())
	rootCmd.AddCommand(newCreditCmd())
	rootCmd.AddCommand(newBookmarkCmd())
	rootCmd.AddCommand(newBlogCmd())
	rootCmd.AddCommand(newClassCmd())
	rootCmd.AddCommand(newAdminCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return
		}
		configDir := home + "/.belajarhosting"
		_ = os.MkdirAll(configDir, 0700)
		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("BELAJARHOSTING")
	viper.AutomaticEnv()

	viper.SetDefault("server_url", client.DefaultBaseURL)
	viper.SetDefault("output", "table")

	_ = viper.ReadInConfig()
}

// isPublicCommand reports whether cmd only hits unauthenticated endpoints
func isPublicCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "catalog", "blog", "class":
			return true
		}
	}
	return false
}

// isAdminCommand reports whether cmd sits under the admin command group
func isAdminCommand(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "admin" {
			return true
		}
	}
	return false
}

func initClient() error {
	url := viper.GetString("server_url")
	if serverURL != "" {
		url = serverURL
	}

	apiClient = client.NewClient(client.Config{
		BaseURL: url,
	})
	return nil
}

func initAuthenticatedClient() error {
	if err := initClient(); err != nil {
		return err
	}

	token := viper.GetString("auth.token")
	if token == "" {
		return fmt.Errorf("not authenticated. Run 'belajarhosting auth login' first")
	}

	apiClient.SetToken(token)
	return nil
}

func initAdminClient() error {
	if err := initClient(); err != nil {
		return err
	}

	token := viper.GetString("auth.admin_token")
	if token == "" {
		return fmt.Errorf("no admin session. Run 'belajarhosting admin login' first")
	}

	apiClient.SetAdminToken(token)
	return nil
}

func getOutputFormat() string {
	if outputFormat != "" && outputFormat != "table" {
		return outputFormat
	}
	return viper.GetString("output")
}
