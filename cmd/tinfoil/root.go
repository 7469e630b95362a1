package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"hermannm.dev/devlog"
)

const defaultDatabasePath = "tinfoil.db"

var logLevel slog.LevelVar

var rootCmd = &cobra.Command{
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	Use:   "tinfoil",
	Short: "An encrypted key-value password store",
	Long: `tinfoil keeps secrets in a single SQLite file, encrypted under a
master password with Scrypt, AES-256-CBC, and HMAC-SHA-512. Nothing in the
file is readable without the master password; the password itself is never
stored anywhere.`,
}

// Execute adds all child commands to the root command and runs it. It is
// called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	slog.SetDefault(slog.New(devlog.NewHandler(os.Stdout, &devlog.Options{
		Level: &logLevel,
	})))

	rootCmd.PersistentFlags().String("db", defaultDatabasePath, "path to the tinfoil database file")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		fmt.Fprintln(os.Stderr, "tinfoil: bind flags:", err)
		os.Exit(1)
	}

	viper.SetEnvPrefix("tinfoil")
	viper.AutomaticEnv()
}

func databasePath() string {
	return viper.GetString("db")
}

func applyDebugFlag() {
	if viper.GetBool("debug") {
		logLevel.Set(slog.LevelDebug)
	}
}
