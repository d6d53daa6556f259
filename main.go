package main

import "github.com/DigiCloudTeam/digicloud/cmd"

func main() {
	cmd.Execute()
}
