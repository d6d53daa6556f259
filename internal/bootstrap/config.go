package bootstrap

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	log "github.com/sirupsen/logrus"

	"github.com/DigiCloudTeam/digicloud/cmd/flags"
	"github.com/DigiCloudTeam/digicloud/internal/conf"
	"github.com/DigiCloudTeam/digicloud/pkg/utils"
)

func InitConfig() {
	dataDir := flags.DataDir
	if !filepath.IsAbs(dataDir) {
		pwd, err := os.Getwd()
		if err != nil {
			pwd = "."
		}
		dataDir = filepath.Join(pwd, dataDir)
		flags.DataDir = dataDir
	}
	configPath := filepath.Join(dataDir, "config.json")
	log.Debugf("reading config file: %s", configPath)
	if !utils.Exists(configPath) {
		log.Infof("config file not exists, creating default config file")
		_, err := utils.CreateNestedFile(configPath)
		if err != nil {
			log.Fatalf("failed to create config file: %+v", err)
		}
		conf.Conf = conf.DefaultConfig(dataDir)
		if !utils.WriteJsonToFile(configPath, conf.Conf) {
			log.Fatalf("failed to create default config file")
		}
	} else {
		configBytes, err := os.ReadFile(configPath)
		if err != nil {
			log.Fatalf("reading config file error: %+v", err)
		}
		conf.Conf = conf.DefaultConfig(dataDir)
		err = utils.Json.Unmarshal(configBytes, conf.Conf)
		if err != nil {
			log.Fatalf("load config error: %+v", err)
		}
	}
	if !conf.Conf.Force {
		confFromEnv()
	}
}

func confFromEnv() {
	prefix := "DIGICLOUD_"
	if flags.NoPrefix {
		prefix = ""
	}
	if err := env.ParseWithOptions(conf.Conf, env.Options{Prefix: prefix}); err != nil {
		log.Fatalf("load config from env error: %+v", err)
	}
}

// SaveConfig writes the in-memory configuration back to disk, keeping the
// token set by login.
func SaveConfig() {
	configPath := filepath.Join(flags.DataDir, "config.json")
	if !utils.WriteJsonToFile(configPath, conf.Conf) {
		log.Errorf("failed to save config file")
	}
}
