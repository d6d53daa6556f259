package cmd

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <parentFolder> <name>",
	Short: "Create a folder",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		parent := parseLocation(args[0], true)
		if err := s.MakeDir(context.Background(), parent, args[1]); err != nil {
			log.Fatalf("mkdir failed: %+v", err)
		}
	},
}

var renameCmd = &cobra.Command{
	Use:   "rename <src> <newName>",
	Short: "Rename a node in place",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		loc := parseSources(args[:1])[0]
		if err := s.Rename(context.Background(), loc, args[1]); err != nil {
			log.Fatalf("rename failed: %+v", err)
		}
	},
}

var infoCmd = &cobra.Command{
	Use:   "info <folder>",
	Short: "Show a folder's total size and element counts",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		loc := parseLocation(args[0], true)
		info, err := s.Info(context.Background(), loc)
		if err != nil {
			log.Fatalf("info failed: %+v", err)
		}
		fmt.Printf("size: %d bytes\nfiles: %d\nfolders: %d\n", info.Size, info.Files, info.Folders)
	},
}

func init() {
	RootCmd.AddCommand(mkdirCmd)
	RootCmd.AddCommand(renameCmd)
	RootCmd.AddCommand(infoCmd)
}
