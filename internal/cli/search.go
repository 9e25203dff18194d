package cli

import "github.com/spf13/cobra"

func init() {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search songs by title or lyrics",
		Args:  cobra.ExactArgs(1),
		Run:   runSearch,
	}

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	printJSON(s.Search(args[0]))
}
