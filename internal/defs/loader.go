// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadBirdDefinitions reads a JSON array of BirdDefinition and overlays it on the defaults.
func LoadBirdDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read bird definitions file: %w", err)
	}

	var birdDefs []BirdDefinition
	if err := json.Unmarshal(file, &birdDefs); err != nil {
		return fmt.Errorf("failed to unmarshal bird definitions: %w", err)
	}

	library := DefaultBirds()
	for _, def := range birdDefs {
		if def.ID == "" {
			return fmt.Errorf("bird definition without id")
		}
		library[def.ID] = def
	}
	BirdLibrary = library

	fmt.Printf("Loaded %d bird definitions\n", len(birdDefs))
	return nil
}
