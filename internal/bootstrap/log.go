package bootstrap

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	log "github.com/sirupsen/logrus"

	"github.com/DigiCloudTeam/digicloud/cmd/flags"
	"github.com/DigiCloudTeam/digicloud/internal/conf"
)

func init() {
	log.SetFormatter(&log.TextFormatter{
		ForceColors:               true,
		EnvironmentOverrideColors: true,
		TimestampFormat:           "2006-01-02 15:04:05",
		FullTimestamp:             true,
	})
}

func Log() {
	if flags.Debug {
		log.SetLevel(log.DebugLevel)
		log.SetReportCaller(true)
	} else {
		log.SetLevel(log.InfoLevel)
		log.SetReportCaller(false)
	}
	logConfig := conf.Conf.Log
	if logConfig.Enable {
		writer := &lumberjack.Logger{
			Filename:   logConfig.Name,
			MaxSize:    logConfig.MaxSize,
			MaxBackups: logConfig.MaxBackups,
			MaxAge:     logConfig.MaxAge,
			Compress:   logConfig.Compress,
		}
		if flags.LogStd {
			log.SetOutput(io.MultiWriter(os.Stdout, writer))
		} else {
			log.SetOutput(writer)
		}
	}
	log.Debugf("log init")
}
