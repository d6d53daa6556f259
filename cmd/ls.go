package cmd

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/DigiCloudTeam/digicloud/internal/model"
)

var lsRefresh bool

var lsCmd = &cobra.Command{
	Use:   "ls <mountID:/path>",
	Short: "List a folder, sorted per the configured preference",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		loc := parseLocation(args[0], true)
		bundle, err := s.List(context.Background(), loc, lsRefresh)
		if err != nil {
			log.Fatalf("list failed: %+v", err)
		}
		for _, n := range bundle.Children {
			kind := "file"
			if n.IsFolder {
				kind = "dir "
			}
			fmt.Printf("%s  %10d  %s  %s\n", kind, n.Size, n.Modified.Format("2006-01-02 15:04"), n.Name)
		}
	},
}

var urlCmd = &cobra.Command{
	Use:   "url <src>",
	Short: "Print the direct download URL of a file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		loc := parseLocation(args[0], false)
		fmt.Println(s.Client().DownloadURL(loc))
	},
}

var mountsCmd = &cobra.Command{
	Use:   "mounts",
	Short: "List accessible mounts",
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		mounts, err := s.Client().GetMounts(context.Background())
		if err != nil {
			log.Fatalf("mounts failed: %+v", err)
		}
		model.SortMounts(mounts)
		for _, m := range mounts {
			state := "offline"
			if m.Online {
				state = "online"
			}
			perm := "ro"
			if m.CanWrite() {
				perm = "rw"
			}
			if m.CanShare() {
				perm += "+share"
			}
			fmt.Printf("%s  %-7s %s  %s (%s)\n", m.ID, m.Type, state, m.Name, perm)
		}
	},
}

func init() {
	lsCmd.Flags().BoolVar(&lsRefresh, "refresh", false, "bypass the listing cache")
	RootCmd.AddCommand(lsCmd)
	RootCmd.AddCommand(urlCmd)
	RootCmd.AddCommand(mountsCmd)
}
