package project

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/primforge/internal/editor/scene"
	"github.com/Faultbox/primforge/internal/logger"
	"github.com/Faultbox/primforge/pkg/math"
)

// Decode parses a document. Anything that is not an object with an
// "objects" list is rejected with an error wrapping ErrMalformed.
func Decode(r io.Reader, format Format) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading project: %w", err)
	}

	var doc Document
	switch format {
	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: top level is not a mapping", ErrMalformed)
		}
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	default:
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, fmt.Errorf("%w: top level is not an object", ErrMalformed)
		}
		if err := json.Unmarshal(trimmed, &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	if doc.Objects == nil {
		return nil, fmt.Errorf("%w: missing objects list", ErrMalformed)
	}
	return &doc, nil
}

// Build turns a decoded document into scene instances using meshes from lib.
// Missing fields take the defaults of a freshly added instance. Objects
// without an id get the next free counter value. An unknown type or a
// repeated id rejects the whole document.
func Build(doc *Document, lib *scene.Library) ([]*scene.Instance, error) {
	if doc == nil || doc.Objects == nil {
		return nil, fmt.Errorf("%w: missing objects list", ErrMalformed)
	}

	objects := *doc.Objects
	instances := make([]*scene.Instance, 0, len(objects))
	seen := make(map[scene.ID]bool, len(objects))
	counter := scene.ID(1)

	for i, obj := range objects {
		p, ok := scene.ParsePrimitive(obj.Type)
		if !ok {
			return nil, fmt.Errorf("%w: object %d: unknown type %q", ErrMalformed, i, obj.Type)
		}

		var id scene.ID
		if obj.ID != nil && *obj.ID > 0 {
			id = scene.ID(*obj.ID)
		} else {
			id = counter
			counter++
		}
		if seen[id] {
			return nil, fmt.Errorf("%w: object %d: duplicate id %d", ErrMalformed, i, id)
		}
		seen[id] = true
		counter = max(counter, id+1)

		inst := scene.NewInstance(id, p, lib.Mesh(p))
		if obj.Name != "" {
			inst.Name = obj.Name
		}
		if obj.Pos != nil {
			v, err := vec3(obj.Pos)
			if err != nil {
				return nil, fmt.Errorf("%w: object %d: pos %v", ErrMalformed, i, err)
			}
			inst.Position = v
		}
		inst.RotationY = obj.RotY
		if obj.Scale != nil {
			v, err := vec3(obj.Scale)
			if err != nil {
				return nil, fmt.Errorf("%w: object %d: scale %v", ErrMalformed, i, err)
			}
			inst.Scale = v
		}
		if obj.Color != "" {
			c, err := scene.ParseColor(obj.Color)
			if err != nil {
				logger.Warn("bad object color, using default", zap.Int("id", int(id)), zap.Error(err))
			} else {
				inst.Color = c
			}
		}
		instances = append(instances, inst)
	}

	return instances, nil
}

func vec3(v []float32) (math.Vec3, error) {
	if len(v) != 3 {
		return math.Vec3{}, fmt.Errorf("has %d components, want 3", len(v))
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}, nil
}

// Load decodes a project and replaces the contents of s with it. On error s
// is left untouched.
func Load(r io.Reader, format Format, s *scene.Scene) error {
	doc, err := Decode(r, format)
	if err != nil {
		return err
	}
	instances, err := Build(doc, s.Library())
	if err != nil {
		return err
	}
	s.Restore(instances)
	return nil
}

// FromScene snapshots the scene into a document.
func FromScene(s *scene.Scene) *Document {
	objects := make([]Object, 0, s.Len())
	for _, inst := range s.Instances() {
		id := int(inst.ID)
		pos := inst.Position.Array()
		scale := inst.Scale.Array()
		objects = append(objects, Object{
			ID:    &id,
			Type:  inst.Type.String(),
			Name:  inst.Name,
			Pos:   pos[:],
			RotY:  inst.RotationY,
			Scale: scale[:],
			Color: inst.Color.Hex(),
		})
	}
	return &Document{Version: Version, Objects: &objects}
}

// Encode writes the scene as a project document.
func Encode(w io.Writer, format Format, s *scene.Scene) error {
	doc := FromScene(s)

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding yaml project: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encoding json project: %w", err)
		}
		return nil
	}
}
