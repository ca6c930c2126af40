package main

import (
	"os"

	"cardtable/internal/config"

	"gopkg.in/yaml.v2"
)

func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.Defaults()); err != nil {
		panic(err)
	}
}
