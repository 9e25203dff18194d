package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/songpad/internal/arrange"
	"github.com/rcliao/songpad/internal/model"
)

func init() {
	arrangeCmd := &cobra.Command{
		Use:   "arrange",
		Short: "Reorder sections into a performance arrangement",
	}

	showCmd := &cobra.Command{
		Use:   "show <song-id>",
		Short: "Show the arranged view",
		Long:  "Show the arranged view: the saved arrangement when one exists, otherwise the sections in text order.",
		Args:  cobra.ExactArgs(1),
		Run:   runArrangeShow,
	}

	moveCmd := &cobra.Command{
		Use:   "move <song-id> <index> <up|down>",
		Short: "Move a section one position",
		Long:  "Move the section at index one position up or down. Prints the result; pass --save to commit it. Moving past either end is a no-op.",
		Args:  cobra.ExactArgs(3),
		Run:   runArrangeMove,
	}
	moveCmd.Flags().Bool("save", false, "Commit the new order")

	swapCmd := &cobra.Command{
		Use:   "swap <song-id> <from> <to>",
		Short: "Swap two positions",
		Long:  "Exchange the sections at the two indexes (swap, not insert-and-shift). Prints the result; pass --save to commit it.",
		Args:  cobra.ExactArgs(3),
		Run:   runArrangeSwap,
	}
	swapCmd.Flags().Bool("save", false, "Commit the new order")

	saveCmd := &cobra.Command{
		Use:   "save <song-id>",
		Short: "Commit the current arranged view",
		Long:  "Commit the arranged view as the saved arrangement, optionally reordered with --order. Saving snapshots a new version and arms one-level undo.",
		Args:  cobra.ExactArgs(1),
		Run:   runArrangeSave,
	}
	saveCmd.Flags().String("order", "", "Comma-separated section ids giving the full new order")

	undoCmd := &cobra.Command{
		Use:   "undo <song-id>",
		Short: "Undo the last arrangement save",
		Args:  cobra.ExactArgs(1),
		Run:   runArrangeUndo,
	}

	arrangeCmd.AddCommand(showCmd, moveCmd, swapCmd, saveCmd, undoCmd)
	RootCmd.AddCommand(arrangeCmd)
}

func runArrangeShow(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	song, err := s.Get(args[0])
	if err != nil {
		exitErr("arrange show", err)
	}

	view := arrange.Build(song)
	printJSON(struct {
		Sections []model.ArrangedSection `json:"sections"`
		Unsaved  bool                    `json:"unsaved_changes"`
	}{view, arrange.HasUnsavedChanges(view, song.Arrangement)})
}

func runArrangeMove(cmd *cobra.Command, args []string) {
	commit, _ := cmd.Flags().GetBool("save")

	var index int
	if _, err := fmt.Sscanf(args[1], "%d", &index); err != nil {
		exitErr("arrange move", fmt.Errorf("invalid index %q", args[1]))
	}
	dir := arrange.Direction(args[2])
	if dir != arrange.Up && dir != arrange.Down {
		exitErr("arrange move", fmt.Errorf("direction must be up or down, got %q", args[2]))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	song, err := s.Get(args[0])
	if err != nil {
		exitErr("arrange move", err)
	}

	view := arrange.Move(arrange.Build(song), index, dir)
	if commit {
		if _, err := s.SaveArrangement(song.ID, arrange.Entries(view)); err != nil {
			exitErr("arrange move", err)
		}
	}
	printJSON(view)
}

func runArrangeSwap(cmd *cobra.Command, args []string) {
	commit, _ := cmd.Flags().GetBool("save")

	var from, to int
	if _, err := fmt.Sscanf(args[1], "%d", &from); err != nil {
		exitErr("arrange swap", fmt.Errorf("invalid index %q", args[1]))
	}
	if _, err := fmt.Sscanf(args[2], "%d", &to); err != nil {
		exitErr("arrange swap", fmt.Errorf("invalid index %q", args[2]))
	}

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	song, err := s.Get(args[0])
	if err != nil {
		exitErr("arrange swap", err)
	}

	view := arrange.Reorder(arrange.Build(song), from, to)
	if commit {
		if _, err := s.SaveArrangement(song.ID, arrange.Entries(view)); err != nil {
			exitErr("arrange swap", err)
		}
	}
	printJSON(view)
}

func runArrangeSave(cmd *cobra.Command, args []string) {
	order, _ := cmd.Flags().GetString("order")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	song, err := s.Get(args[0])
	if err != nil {
		exitErr("arrange save", err)
	}

	view := arrange.Build(song)
	if order != "" {
		view, err = reorderByIDs(view, splitCSV(order))
		if err != nil {
			exitErr("arrange save", err)
		}
	}

	updated, err := s.SaveArrangement(song.ID, arrange.Entries(view))
	if err != nil {
		exitErr("arrange save", err)
	}
	printJSON(updated.Arrangement)
}

func runArrangeUndo(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	song, err := s.UndoArrangementSave(args[0])
	if err != nil {
		exitErr("arrange undo", err)
	}
	printJSON(song.Arrangement)
}

// reorderByIDs permutes the view to match the given id order. The ids must be
// exactly the view's ids, each once.
func reorderByIDs(view []model.ArrangedSection, ids []string) ([]model.ArrangedSection, error) {
	if len(ids) != len(view) {
		return nil, fmt.Errorf("order lists %d ids, arrangement has %d sections", len(ids), len(view))
	}
	byID := make(map[string]model.ArrangedSection, len(view))
	for _, a := range view {
		byID[a.ID] = a
	}
	out := make([]model.ArrangedSection, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		a, ok := byID[id]
		if !ok || seen[id] {
			return nil, fmt.Errorf("order must be a permutation of the current section ids (bad id %s)", id)
		}
		seen[id] = true
		out = append(out, a)
	}
	return out, nil
}
