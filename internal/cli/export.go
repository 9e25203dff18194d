package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/songpad/internal/store"
)

func init() {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the library as JSON",
		Long:  "Export the whole library (songs with version history, categories) as JSON to stdout.",
		Run:   runExport,
	}

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import a library from JSON",
		Long:  "Import from JSON on stdin. Expects the format produced by export. Songs with an already-taken title and categories with an already-taken name are skipped.",
		Run:   runImport,
	}

	RootCmd.AddCommand(exportCmd, importCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	printJSON(s.ExportAll())
}

func runImport(cmd *cobra.Command, args []string) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		exitErr("read stdin", err)
	}

	var lib store.Library
	if err := json.Unmarshal(data, &lib); err != nil {
		exitErr("parse json", err)
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	songs, categories := s.Import(&lib)
	fmt.Printf(`{"ok":true,"songs":%d,"categories":%d}`+"\n", songs, categories)
}
