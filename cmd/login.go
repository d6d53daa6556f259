package cmd

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/DigiCloudTeam/digicloud/internal/bootstrap"
	"github.com/DigiCloudTeam/digicloud/internal/client"
	"github.com/DigiCloudTeam/digicloud/internal/conf"
)

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Authenticate and store the bearer token",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		c := client.FromConf(conf.Conf)
		token, err := c.Login(context.Background(), args[0], args[1])
		if err != nil {
			log.Fatalf("login failed: %+v", err)
		}
		conf.Conf.Token = token
		bootstrap.SaveConfig()
		fmt.Println("logged in")
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored bearer token",
	Run: func(cmd *cobra.Command, args []string) {
		Init()
		conf.Conf.Token = ""
		bootstrap.SaveConfig()
		fmt.Println("logged out")
	},
}

func init() {
	RootCmd.AddCommand(loginCmd)
	RootCmd.AddCommand(logoutCmd)
}
