package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rcliao/songpad/internal/store"
)

func init() {
	categoryCmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
		Long:  "Manage categories. Songs reference categories by name, so renaming one does not update songs already tagged with the old name.",
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		Run:   runCategoryAdd,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Run:   runCategoryList,
	}

	editCmd := &cobra.Command{
		Use:   "edit <category-id>",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(1),
		Run:   runCategoryEdit,
	}
	editCmd.Flags().StringP("name", "n", "", "New name (required)")
	editCmd.MarkFlagRequired("name")

	rmCmd := &cobra.Command{
		Use:   "rm <category-id>",
		Short: "Delete a category",
		Args:  cobra.ExactArgs(1),
		Run:   runCategoryRm,
	}

	undoRmCmd := &cobra.Command{
		Use:   "undo-rm",
		Short: "Restore the last deleted category",
		Run:   runCategoryUndoRm,
	}

	categoryCmd.AddCommand(addCmd, listCmd, editCmd, rmCmd, undoRmCmd)
	RootCmd.AddCommand(categoryCmd)
}

func runCategoryAdd(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	c, err := s.AddCategory(args[0])
	if err != nil {
		exitErr("category add", err)
	}
	printJSON(c)
}

func runCategoryList(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	printJSON(s.Categories())
}

func runCategoryEdit(cmd *cobra.Command, args []string) {
	name, _ := cmd.Flags().GetString("name")

	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	c, err := s.PatchCategory(args[0], store.CategoryPatch{Name: &name})
	if err != nil {
		exitErr("category edit", err)
	}
	printJSON(c)
}

func runCategoryRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	removed, err := s.RemoveCategory(args[0])
	if err != nil {
		exitErr("category rm", err)
	}
	fmt.Printf(`{"ok":true,"removed":%q,"name":%q}`+"\n", removed.ID, removed.Name)
}

func runCategoryUndoRm(cmd *cobra.Command, args []string) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	c, err := s.UndoRemoveCategory()
	if err != nil {
		exitErr("category undo-rm", err)
	}
	printJSON(c)
}
