package cli

import (
	"github.com/spf13/cobra"

	"github.com/rcliao/songpad/internal/section"
	"github.com/rcliao/songpad/internal/store"
)

func init() {
	tagCmd := &cobra.Command{
		Use:   "tag",
		Short: "Tag lyric ranges with structural labels",
	}

	addCmd := &cobra.Command{
		Use:   "add <song-id>",
		Short: "Tag a character range",
		Long:  "Tag the half-open character range [start,end) of the lyrics. The range must not overlap an existing section; touching boundaries are fine.",
		Args:  cobra.ExactArgs(1),
		Run:   runTagAdd,
	}
	addCmd.Flags().Int("start", 0, "Range start offset (inclusive)")
	addCmd.Flags().Int("end", 0, "Range end offset (exclusive)")
	addCmd.Flags().String("type", "", "Section type: verse, chorus, bridge, intro, outro, pre-chorus, hook, instrumental")
	addCmd.Flags().StringP("performers", "p", "", "Comma-separated performers")
	addCmd.MarkFlagRequired("start")
	addCmd.MarkFlagRequired("end")
	addCmd.MarkFlagRequired("type")

	rmCmd := &cobra.Command{
		Use:   "rm <song-id> <section-id>",
		Short: "Remove a tag",
		Args:  cobra.ExactArgs(2),
		Run:   runTagRm,
	}

	performerCmd := &cobra.Command{
		Use:   "performer <song-id> <section-id>",
		Short: "Toggle a performer on a section",
		Args:  cobra.ExactArgs(2),
		Run:   runTagPerformer,
	}
	performerCmd.Flags().StringP("name", "n", "", "Performer name (required)")
	performerCmd.MarkFlagRequired("name")

	listCmd := &cobra.Command{
		Use:   "list <song-id>",
		Short: "List a song's sections in text order",
		Args:  cobra.ExactArgs(1),
		Run:   runTagList,
	}

	suggestCmd := &cobra.Command{
		Use:   "suggest <song-id>",
		Short: "Suggest taggable ranges",
		Long:  "Propose candidate ranges: blank-line-separated lyric blocks that do not collide with existing tags.",
		Args:  cobra.ExactArgs(1),
		Run:   runTagSuggest,
	}

	tagCmd.AddCommand(addCmd, rmCmd, performerCmd, listCmd, suggestCmd)
	RootCmd.AddCommand(tagCmd)
}

func runTagAdd(cmd *cobra.Command, args []string) {
	start, _ := cmd.Flags().GetInt("start")
	end, _ := cmd.Flags().GetInt("end")
	sectionType, _ := cmd.Flags().GetString("type")
	performers, _ := cmd.Flags().GetString("performers")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	sec, err := s.TagSection(args[0], store.TagParams{
		Start:      start,
		End:        end,
		Type:       sectionType,
		Performers: splitCSV(performers),
	})
	if err != nil {
		exitErr("tag add", err)
	}
	printJSON(sec)
}

func runTagRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	song, err := s.UntagSection(args[0], args[1])
	if err != nil {
		exitErr("tag rm", err)
	}
	printJSON(song.Sections)
}

func runTagPerformer(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	song, err := s.TogglePerformer(args[0], args[1], name)
	if err != nil {
		exitErr("tag performer", err)
	}
	printJSON(song.Sections)
}

func runTagList(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	song, err := s.Get(args[0])
	if err != nil {
		exitErr("tag list", err)
	}
	printJSON(section.SortByStart(song.Sections))
}

func runTagSuggest(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	blocks, err := s.SuggestSections(args[0])
	if err != nil {
		exitErr("tag suggest", err)
	}
	printJSON(blocks)
}
