package web

import (
	"github.com/CAMongrel/mytcglib/skirmish"
	"gopkg.in/yaml.v3"
)

func parseDeckFileYAML(data []byte) (skirmish.DeckFile, error) {
	var df skirmish.DeckFile
	err := yaml.Unmarshal(data, &df)
	return df, err
}
