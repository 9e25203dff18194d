package cli

import (
	"fmt"
	"time"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"
)

func init() {
	versionsCmd := &cobra.Command{
		Use:   "versions",
		Short: "Browse a song's version history",
		Long:  "Browse the append-only version ledger. Viewing is read-only; past versions are never restored as current.",
	}

	listCmd := &cobra.Command{
		Use:   "list <song-id>",
		Short: "List versions, oldest first",
		Args:  cobra.ExactArgs(1),
		Run:   runVersionsList,
	}

	showCmd := &cobra.Command{
		Use:   "show <song-id> <version-id>",
		Short: "Show one version in full",
		Args:  cobra.ExactArgs(2),
		Run:   runVersionsShow,
	}

	diffCmd := &cobra.Command{
		Use:   "diff <song-id> <version-id> <version-id>",
		Short: "Diff the lyrics of two versions",
		Args:  cobra.ExactArgs(3),
		Run:   runVersionsDiff,
	}

	versionsCmd.AddCommand(listCmd, showCmd, diffCmd)
	RootCmd.AddCommand(versionsCmd)
}

func runVersionsList(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	song, err := s.Get(args[0])
	if err != nil {
		exitErr("versions list", err)
	}

	type summary struct {
		ID        string    `json:"id"`
		Timestamp time.Time `json:"timestamp"`
		Sections  int       `json:"sections"`
		Arranged  int       `json:"arranged"`
		Lyrics    int       `json:"lyrics_chars"`
	}
	out := make([]summary, 0, len(song.Versions))
	for _, v := range song.Versions {
		out = append(out, summary{
			ID:        v.ID,
			Timestamp: v.Timestamp,
			Sections:  len(v.Sections),
			Arranged:  len(v.Arrangement),
			Lyrics:    len(v.Lyrics),
		})
	}
	printJSON(out)
}

func runVersionsShow(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	v, err := s.Version(args[0], args[1])
	if err != nil {
		exitErr("versions show", err)
	}
	printJSON(v)
}

func runVersionsDiff(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	a, err := s.Version(args[0], args[1])
	if err != nil {
		exitErr("versions diff", err)
	}
	b, err := s.Version(args[0], args[2])
	if err != nil {
		exitErr("versions diff", err)
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a.Lyrics),
		B:        difflib.SplitLines(b.Lyrics),
		FromFile: a.ID,
		FromDate: a.Timestamp.Format(time.RFC3339),
		ToFile:   b.ID,
		ToDate:   b.Timestamp.Format(time.RFC3339),
		Context:  3,
	})
	if err != nil {
		exitErr("versions diff", err)
	}
	if text == "" {
		fmt.Println("lyrics identical")
		return
	}
	fmt.Print(text)
}
