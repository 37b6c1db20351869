package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var saveName string

var saveCmd = &cobra.Command{
	Use:   "save [flow-id] [file]",
	Short: "Save a file into a flow",
	Long:  `Reads the given file (or stdin when file is "-") and stores it under the flow. An existing file with the same name is overwritten.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runSave,
}

var getCmd = &cobra.Command{
	Use:   "get [flow-id] [file-name]",
	Short: "Print a flow file to stdout",
	Args:  cobra.ExactArgs(2),
	RunE:  runGet,
}

var listCmd = &cobra.Command{
	Use:   "list [flow-id]",
	Short: "List the files stored under a flow",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete [flow-id] [file-name]",
	Short: "Delete a flow file (no-op if absent)",
	Args:  cobra.ExactArgs(2),
	RunE:  runDelete,
}

var pathCmd = &cobra.Command{
	Use:   "path [flow-id] [file-name]",
	Short: "Print the on-disk path a flow file maps to",
	Args:  cobra.ExactArgs(2),
	RunE:  runPath,
}

func init() {
	saveCmd.Flags().StringVar(&saveName, "name", "", "store under this name instead of the file's base name")
	rootCmd.AddCommand(saveCmd, getCmd, listCmd, deleteCmd, pathCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	var data []byte
	name := saveName
	if args[1] == "-" {
		if data, err = io.ReadAll(cmd.InOrStdin()); err != nil {
			return err
		}
		if name == "" {
			name = "stdin"
		}
	} else {
		if data, err = os.ReadFile(args[1]); err != nil {
			return err
		}
		if name == "" {
			name = filepath.Base(args[1])
		}
	}

	return store.Save(cmd.Context(), args[0], name, data)
}

func runGet(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	data, err := store.Get(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}

	names, err := store.List(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	for _, name := range names {
		cmd.Println(name)
	}
	return nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	return store.Delete(cmd.Context(), args[0], args[1])
}

func runPath(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	cmd.Println(store.BuildFullPath(args[0], args[1]))
	return nil
}
