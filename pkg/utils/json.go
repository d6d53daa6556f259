package utils

import (
	"os"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
)

var Json = jsoniter.ConfigCompatibleWithStandardLibrary

// WriteJsonToFile write struct to json file
func WriteJsonToFile(dst string, data interface{}) bool {
	str, err := Json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Errorf("failed to marshal json: %+v", err)
		return false
	}
	err = os.WriteFile(dst, str, 0o600)
	if err != nil {
		log.Errorf("failed to write json file: %+v", err)
		return false
	}
	return true
}
