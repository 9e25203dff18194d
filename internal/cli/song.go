package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/songpad/internal/store"
)

func init() {
	songCmd := &cobra.Command{
		Use:   "song",
		Short: "Manage songs",
	}

	addCmd := &cobra.Command{
		Use:   "add [lyrics]",
		Short: "Create a song",
		Long:  "Create a song. Lyrics can be a positional arg or piped via stdin.",
		Run:   runSongAdd,
	}
	addCmd.Flags().StringP("title", "t", "", "Song title (required)")
	addCmd.Flags().StringP("categories", "c", "", "Comma-separated category names")
	addCmd.Flags().StringP("performers", "p", "", "Comma-separated featured performers")
	addCmd.MarkFlagRequired("title")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List songs",
		Run:   runSongList,
	}
	listCmd.Flags().StringP("category", "c", "", "Filter by category name")
	listCmd.Flags().Bool("titles-only", false, "Only output id and title")

	showCmd := &cobra.Command{
		Use:   "show <song-id>",
		Short: "Show a song",
		Args:  cobra.ExactArgs(1),
		Run:   runSongShow,
	}

	editCmd := &cobra.Command{
		Use:   "edit <song-id>",
		Short: "Edit song metadata (title, categories, featured performers)",
		Args:  cobra.ExactArgs(1),
		Run:   runSongEdit,
	}
	editCmd.Flags().StringP("title", "t", "", "New title")
	editCmd.Flags().StringP("categories", "c", "", "Comma-separated category names")
	editCmd.Flags().StringP("performers", "p", "", "Comma-separated featured performers")

	lyricsCmd := &cobra.Command{
		Use:   "lyrics <song-id> [lyrics]",
		Short: "Replace a song's lyrics",
		Long:  "Replace the lyrics wholesale. Existing tags are revalidated against the new text; the edit is rejected if any tag would fall out of bounds.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSongLyrics,
	}

	rmCmd := &cobra.Command{
		Use:   "rm <song-id>",
		Short: "Delete a song",
		Args:  cobra.ExactArgs(1),
		Run:   runSongRm,
	}

	undoRmCmd := &cobra.Command{
		Use:   "undo-rm",
		Short: "Restore the last deleted song",
		Long:  "Restore the last deleted song. It is re-added at the end of the list, not at its original position.",
		Run:   runSongUndoRm,
	}

	undoEditCmd := &cobra.Command{
		Use:   "undo-edit <song-id>",
		Short: "Undo the last metadata edit",
		Args:  cobra.ExactArgs(1),
		Run:   runSongUndoEdit,
	}

	undoLyricsCmd := &cobra.Command{
		Use:   "undo-lyrics <song-id>",
		Short: "Undo the last lyrics or tag edit",
		Args:  cobra.ExactArgs(1),
		Run:   runSongUndoLyrics,
	}

	songCmd.AddCommand(addCmd, listCmd, showCmd, editCmd, lyricsCmd, rmCmd, undoRmCmd, undoEditCmd, undoLyricsCmd)
	RootCmd.AddCommand(songCmd)
}

func runSongAdd(cmd *cobra.Command, args []string) {
	title, _ := cmd.Flags().GetString("title")
	categories, _ := cmd.Flags().GetString("categories")
	performers, _ := cmd.Flags().GetString("performers")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	song, err := s.CreateSong(store.CreateSongParams{
		Title:              title,
		Lyrics:             readContent(args),
		Categories:         splitCSV(categories),
		FeaturedPerformers: splitCSV(performers),
	})
	if err != nil {
		exitErr("song add", err)
	}
	printJSON(song)
}

func runSongList(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")
	titlesOnly, _ := cmd.Flags().GetBool("titles-only")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	songs := s.List()
	if category != "" {
		filtered := songs[:0]
		for _, song := range songs {
			for _, c := range song.Categories {
				if c == category {
					filtered = append(filtered, song)
					break
				}
			}
		}
		songs = filtered
	}

	if titlesOnly {
		for _, song := range songs {
			fmt.Printf("%s\t%s\n", song.ID, song.Title)
		}
		return
	}
	printJSON(songs)
}

func runSongShow(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	song, err := s.Get(args[0])
	if err != nil {
		exitErr("song show", err)
	}
	printJSON(song)
}

func runSongEdit(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	// The store replaces the metadata facet wholesale, so fill unchanged
	// fields from the current record.
	current, err := s.Get(args[0])
	if err != nil {
		exitErr("song edit", err)
	}

	p := store.MetadataParams{
		Title:              current.Title,
		Categories:         current.Categories,
		FeaturedPerformers: current.FeaturedPerformers,
	}
	if cmd.Flags().Changed("title") {
		p.Title, _ = cmd.Flags().GetString("title")
	}
	if cmd.Flags().Changed("categories") {
		v, _ := cmd.Flags().GetString("categories")
		p.Categories = splitCSV(v)
	}
	if cmd.Flags().Changed("performers") {
		v, _ := cmd.Flags().GetString("performers")
		p.FeaturedPerformers = splitCSV(v)
	}

	song, err := s.UpdateMetadata(args[0], p)
	if err != nil {
		exitErr("song edit", err)
	}
	printJSON(song)
}

func runSongLyrics(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	current, err := s.Get(args[0])
	if err != nil {
		exitErr("song lyrics", err)
	}

	song, err := s.UpdateLyrics(args[0], readContent(args[1:]), current.Sections)
	if err != nil {
		exitErr("song lyrics", err)
	}
	printJSON(song)
}

func runSongRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	removed, err := s.RemoveSong(args[0])
	if err != nil {
		exitErr("song rm", err)
	}
	fmt.Printf(`{"ok":true,"removed":%q,"title":%q}`+"\n", removed.ID, removed.Title)
}

func runSongUndoRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	song, err := s.UndoRemoveSong()
	if err != nil {
		exitErr("song undo-rm", err)
	}
	printJSON(song)
}

func runSongUndoEdit(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	song, err := s.UndoMetadata(args[0])
	if err != nil {
		exitErr("song undo-edit", err)
	}
	printJSON(song)
}

func runSongUndoLyrics(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	song, err := s.UndoLyrics(args[0])
	if err != nil {
		exitErr("song undo-lyrics", err)
	}
	printJSON(song)
}
