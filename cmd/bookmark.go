package cmd

import (
	"context"
	"fmt"

	"github.com/DigiCloudTeam/digicloud/internal/model"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var bookmarkCmd = &cobra.Command{
	Use:   "bookmark [name] [folder]",
	Short: "List bookmarks, or toggle one on a folder",
	Args:  cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		if len(args) == 0 {
			bookmarks, err := s.Client().GetBookmarks(context.Background())
			if err != nil {
				log.Fatalf("bookmarks failed: %+v", err)
			}
			for _, b := range bookmarks {
				fmt.Printf("%s  %s\n", b.Name, b.Location())
			}
			return
		}
		if len(args) != 2 {
			log.Fatal("toggle needs a name and a folder")
		}
		loc := parseLocation(args[1], true)
		bookmarked, err := s.ToggleBookmark(context.Background(), args[0], loc)
		if err != nil {
			log.Fatalf("bookmark toggle failed: %+v", err)
		}
		if bookmarked {
			fmt.Println("bookmarked")
		} else {
			fmt.Println("removed")
		}
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query> [scopeFolder]",
	Short: "Search across all mounts, or inside one folder",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		var scope *model.Location
		if len(args) == 2 {
			loc := parseLocation(args[1], true)
			scope = &loc
		}
		hits, err := s.Search(context.Background(), args[0], scope)
		if err != nil {
			log.Fatalf("search failed: %+v", err)
		}
		for _, h := range hits {
			fmt.Printf("%s:%s\n", h.Location.MountID, h.Location.Path)
		}
	},
}

func init() {
	RootCmd.AddCommand(bookmarkCmd)
	RootCmd.AddCommand(searchCmd)
}
