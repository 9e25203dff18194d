// Package cli implements the songpad CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rcliao/songpad/internal/storage"
	"github.com/rcliao/songpad/internal/store"
)

var (
	dataPath    string
	backendFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "songpad",
	Short: "Local songwriting notebook",
	Long:  "Write lyrics, tag sections, arrange performance order, and browse version history. Single binary, local data.",
}

func init() {
	// A project-local .env may supply SONGPAD_DATA; absence is fine.
	godotenv.Load()

	RootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "Data path (default: $SONGPAD_DATA or ~/.songpad/songpad.db)")
	RootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "sqlite", "Storage backend: sqlite or json")
}

func getDataPath() string {
	if dataPath != "" {
		return dataPath
	}
	if env := os.Getenv("SONGPAD_DATA"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	if backendFlag == "json" {
		return filepath.Join(home, ".songpad", "library")
	}
	return filepath.Join(home, ".songpad", "songpad.db")
}

func openStore() (*store.Store, error) {
	var kv storage.KV
	var err error
	switch backendFlag {
	case "json":
		kv, err = storage.NewFileKV(getDataPath())
	default:
		kv, err = storage.NewSQLiteKV(getDataPath())
	}
	if err != nil {
		return nil, err
	}
	return store.Open(kv)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
