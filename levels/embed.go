package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/milk9111/cutscene/prefabs"
	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Load returns the room layout of a scene by id, e.g. "level_2".
func Load(name string) (prefabs.RoomSpec, error) {
	var room prefabs.RoomSpec
	data, err := fs.ReadFile(LevelsFS, fileName(name))
	if err != nil {
		return room, fmt.Errorf("read level: %w", err)
	}
	if err := yaml.Unmarshal(data, &room); err != nil {
		return room, fmt.Errorf("unmarshal level %s: %w", name, err)
	}
	if room.Name == "" {
		room.Name = strings.TrimSuffix(fileName(name), ".yaml")
	}
	return room, nil
}

// Names lists the embedded scene ids.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	return names
}

func fileName(name string) string {
	base := path.Base(strings.TrimSpace(name))
	if !strings.HasSuffix(base, ".yaml") {
		base += ".yaml"
	}
	return base
}
