// Package save implements JSON serialization and deserialization of
// explorer sessions.
package save

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/nathoo/jaklogic/config"
	"github.com/nathoo/jaklogic/engine/state"
)

// FormatVersion is written into every save.
const FormatVersion = "1"

var ErrVersion = errors.New("save: unsupported format version")

// SaveData is the JSON-serializable save format.
type SaveData struct {
	Version     string         `json:"version"`
	Session     string         `json:"session"`
	Player      int            `json:"player"`
	Options     config.Options `json:"options"`
	Items       map[string]int `json:"items"`
	RNGSeed     int64          `json:"rng_seed"`
	RNGPosition int64          `json:"rng_position"`
	CommandLog  []string       `json:"command_log"`
}

// NewSession returns a fresh session id.
func NewSession() string {
	return uuid.NewString()
}

// Save serializes a session to JSON bytes. A missing session id is
// filled in.
func Save(sd *SaveData) ([]byte, error) {
	if sd.Session == "" {
		sd.Session = NewSession()
	}
	sd.Version = FormatVersion
	return json.MarshalIndent(sd, "", "  ")
}

// Load deserializes JSON bytes into SaveData.
func Load(data []byte) (*SaveData, error) {
	var sd SaveData
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, err
	}
	if sd.Version != FormatVersion {
		return nil, fmt.Errorf("%w: %q", ErrVersion, sd.Version)
	}
	if _, err := uuid.Parse(sd.Session); err != nil {
		return nil, fmt.Errorf("save: session id: %w", err)
	}
	// Ensure maps are never nil after load.
	if sd.Items == nil {
		sd.Items = map[string]int{}
	}
	if sd.CommandLog == nil {
		sd.CommandLog = []string{}
	}
	if sd.Player == 0 {
		sd.Player = 1
	}
	return &sd, nil
}

// Capture copies a player's items out of a collection.
func Capture(c *state.Collection, player int) map[string]int {
	return c.Items(player)
}

// ApplySave replaces a player's items in c with the saved ones.
func ApplySave(c *state.Collection, sd *SaveData) {
	c.Reset(sd.Player)
	names := make([]string, 0, len(sd.Items))
	for name := range sd.Items {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c.Collect(name, sd.Player, sd.Items[name])
	}
}
