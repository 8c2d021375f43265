package level

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/vovakirdan/naughty-nice/internal/core"
	"github.com/vovakirdan/naughty-nice/internal/world"
)

//go:embed maps/*.tmx
var builtinMaps embed.FS

// DefaultMap is the path of the bundled level inside Builtin().
const DefaultMap = "maps/workshop.tmx"

const (
	groupSpawn    = "PlayerSpawn"
	groupPresents = "Presents"
)

var (
	// ErrNoSpawn is returned when a map has no PlayerSpawn object.
	ErrNoSpawn = errors.New("map has no player spawn")
	// ErrUnknownKind is returned for a present whose kind property is neither
	// "nice" nor "naughty".
	ErrUnknownKind = errors.New("unknown present kind")
)

// Builtin returns the filesystem holding the bundled maps.
func Builtin() fs.FS {
	return builtinMaps
}

// Load reads a Tiled map from fsys. The first object of the PlayerSpawn group
// is the spawn point; every object of the Presents group becomes a
// placement, described by its "kind" and "damage" properties.
//
// Tiled positions are top-left corners in a y-down pixel space. They are
// converted to box centers in a y-up space centered on the map.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	halfW := float64(m.Width*m.TileWidth) / 2
	halfH := float64(m.Height*m.TileHeight) / 2
	center := func(o *tiled.Object) core.Vec2 {
		return core.Vec2{
			X: o.X + o.Width/2 - halfW,
			Y: halfH - (o.Y + o.Height/2),
		}
	}

	lvl := &Level{Name: strings.TrimSuffix(path.Base(tmxPath), ".tmx")}
	spawned := false
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case groupSpawn:
			if len(og.Objects) > 0 && !spawned {
				lvl.Spawn = center(og.Objects[0])
				spawned = true
			}
		case groupPresents:
			for _, o := range og.Objects {
				p, err := placement(o, center(o))
				if err != nil {
					return nil, fmt.Errorf("%s: object %d: %w", tmxPath, o.ID, err)
				}
				lvl.Presents = append(lvl.Presents, p)
			}
		}
	}
	if !spawned {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}

	return lvl, nil
}

func placement(o *tiled.Object, pos core.Vec2) (Placement, error) {
	name := o.Properties.GetString("kind")
	kind, ok := world.ParseKind(name)
	if !ok {
		return Placement{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}

	p := Placement{Kind: kind, Position: pos}
	if kind == world.Naughty {
		damage := o.Properties.GetInt("damage")
		if damage < 1 {
			damage = 1
		}
		p.Damage = uint(damage)
	}
	return p, nil
}

// List returns the .tmx files in dir, sorted by name.
func List(fsys fs.FS, dir string) ([]string, error) {
	pattern := path.Join(dir, "*.tmx")
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}
