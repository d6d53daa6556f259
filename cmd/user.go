package cmd

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/DigiCloudTeam/digicloud/internal/conf"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Show the profile of the logged-in user",
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		requireToken()
		s := newService()
		u, err := s.Client().GetUser(context.Background())
		if err != nil {
			log.Fatalf("user failed: %+v", err)
		}
		fmt.Printf("%s <%s>\n", u.Name(), u.Email)
		fmt.Printf("id: %s\n", u.ID)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf(`Built At: %s
Version: %s
Commit ID: %s
`, conf.BuiltAt, conf.Version, conf.GitCommit)
	},
}

func init() {
	RootCmd.AddCommand(userCmd)
	RootCmd.AddCommand(versionCmd)
}
