package storage

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Flush serializes and saves to file a generic object.
// It returns an error if unsuccessful.
func Flush(m any, fileName string) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("Error while serializing object to %s: %s", fileName, err)
	} else if err = os.WriteFile(fileName, data, 0755); err != nil {
		return fmt.Errorf("Error while saving object to %s: %s", fileName, err)
	}
	return nil
}
