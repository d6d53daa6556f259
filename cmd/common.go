package cmd

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/DigiCloudTeam/digicloud/internal/bootstrap"
	"github.com/DigiCloudTeam/digicloud/internal/client"
	"github.com/DigiCloudTeam/digicloud/internal/conf"
	"github.com/DigiCloudTeam/digicloud/internal/fs"
	"github.com/DigiCloudTeam/digicloud/internal/model"
	"github.com/DigiCloudTeam/digicloud/pkg/utils"
)

func Init() {
	bootstrap.InitConfig()
	bootstrap.Log()
}

func newService() *fs.Service {
	return fs.NewService(client.FromConf(conf.Conf), conf.Conf)
}

func requireToken() {
	if conf.Conf.Token == "" {
		log.Fatal("not logged in, run: digicloud login")
	}
}

// parseLocation reads the "mountID:/path" argument form. Folder arguments
// get the trailing slash restored if the user dropped it.
func parseLocation(arg string, isFolder bool) model.Location {
	mountID, path, ok := strings.Cut(arg, ":")
	if !ok || mountID == "" {
		log.Fatalf("invalid location %q, want mountID:/path", arg)
	}
	path = utils.FixAndCleanPath(path)
	if isFolder {
		path = utils.PathAddSeparatorSuffix(path)
	}
	return model.Location{MountID: mountID, Path: path}
}
