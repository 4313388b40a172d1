package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/procedural"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownGenerator indicates a solid whose type names no generator.
	ErrUnknownGenerator = errors.New("meshgen: unknown generator")

	// ErrUnknownShape indicates a shape whose type is not recognised.
	ErrUnknownShape = errors.New("meshgen: unknown shape")

	// ErrUnknownFormat indicates a scene file extension other than
	// .yaml, .yml or .toml.
	ErrUnknownFormat = errors.New("meshgen: unknown scene format")
)

// Scene is the file format read by meshgen.
type Scene struct {
	Mesh   MeshConfig    `yaml:"mesh" toml:"mesh"`
	Solids []SolidConfig `yaml:"solids" toml:"solids"`
	Shapes []ShapeConfig `yaml:"shapes" toml:"shapes"`
	// Query lists 2D points classified against the shapes.
	Query [][]float32 `yaml:"query" toml:"query"`
}

// MeshConfig holds the parameters shared by every solid.
type MeshConfig struct {
	UVTile       []float32 `yaml:"uv_tile" toml:"uv_tile"`
	TexCoordSets *int      `yaml:"tex_coord_sets" toml:"tex_coord_sets"`
	Normals      *bool     `yaml:"normals" toml:"normals"`
}

// SolidConfig describes one generated solid. Which fields apply depends
// on Type; unset fields keep the generator defaults.
type SolidConfig struct {
	Type            string    `yaml:"type" toml:"type"`
	Size            []float32 `yaml:"size" toml:"size"`
	Segments        []int     `yaml:"segments" toml:"segments"`
	Chamfer         float32   `yaml:"chamfer" toml:"chamfer"`
	ChamferSegments int       `yaml:"chamfer_segments" toml:"chamfer_segments"`
	Radius          float32   `yaml:"radius" toml:"radius"`
	Rings           int       `yaml:"rings" toml:"rings"`
	Normal          []float32 `yaml:"normal" toml:"normal"`
	Position        []float32 `yaml:"position" toml:"position"`
	Spherify        bool      `yaml:"spherify" toml:"spherify"`
}

// ShapeConfig describes one member of the scene MultiShape.
type ShapeConfig struct {
	Type     string      `yaml:"type" toml:"type"`
	Width    float32     `yaml:"width" toml:"width"`
	Height   float32     `yaml:"height" toml:"height"`
	Radius   float32     `yaml:"radius" toml:"radius"`
	Segments int         `yaml:"segments" toml:"segments"`
	Points   [][]float32 `yaml:"points" toml:"points"`
	Closed   bool        `yaml:"closed" toml:"closed"`
	// Outside is "left" or "right"; empty keeps the shape default.
	Outside string `yaml:"outside" toml:"outside"`
	// Hole switches the declared outside so the shape cuts its interior
	// out of the region.
	Hole   bool      `yaml:"hole" toml:"hole"`
	Offset []float32 `yaml:"offset" toml:"offset"`
}

// LoadScene reads a scene from a YAML or TOML file chosen by extension.
// Unknown keys are rejected.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	return ParseScene(data, filepath.Ext(path))
}

// ParseScene decodes data in the format named by ext.
func ParseScene(data []byte, ext string) (*Scene, error) {
	var scene Scene
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&scene); err != nil {
			return nil, fmt.Errorf("meshgen: parse yaml: %w", err)
		}
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&scene); err != nil {
			return nil, fmt.Errorf("meshgen: parse toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	return &scene, nil
}

// Options converts the shared mesh settings to generator options.
func (mc MeshConfig) Options() []procedural.MeshOption {
	var opts []procedural.MeshOption
	if len(mc.UVTile) == 2 {
		opts = append(opts, procedural.WithUVTile(mc.UVTile[0], mc.UVTile[1]))
	}
	if mc.TexCoordSets != nil {
		opts = append(opts, procedural.WithTexCoordSets(*mc.TexCoordSets))
	}
	if mc.Normals != nil {
		opts = append(opts, procedural.WithNormals(*mc.Normals))
	}
	return opts
}

// Generator builds the configured generator and validates it.
func (sc SolidConfig) Generator(mesh MeshConfig) (procedural.Generator, error) {
	opts := mesh.Options()
	if p, ok := vec3(sc.Position); ok {
		opts = append(opts, procedural.WithPosition(p))
	}

	var g procedural.Generator
	switch sc.Type {
	case "rounded_box":
		rb := procedural.NewRoundedBoxGenerator(opts...)
		setXYZ(sc.Size, &rb.SizeX, &rb.SizeY, &rb.SizeZ)
		setXYZ(sc.Segments, &rb.NumSegX, &rb.NumSegY, &rb.NumSegZ)
		setIf(sc.Chamfer, &rb.ChamferSize)
		setIf(sc.ChamferSegments, &rb.ChamferNumSeg)
		g = rb
	case "box":
		bg := procedural.NewBoxGenerator(opts...)
		setXYZ(sc.Size, &bg.SizeX, &bg.SizeY, &bg.SizeZ)
		setXYZ(sc.Segments, &bg.NumSegX, &bg.NumSegY, &bg.NumSegZ)
		g = bg
	case "sphere":
		sg := procedural.NewSphereGenerator(opts...)
		setIf(sc.Radius, &sg.Radius)
		setIf(sc.Rings, &sg.NumRings)
		if len(sc.Segments) > 0 {
			sg.NumSegments = sc.Segments[0]
		}
		g = sg
	case "plane":
		pg := procedural.NewPlaneGenerator(opts...)
		if len(sc.Size) == 2 {
			pg.SizeX, pg.SizeY = sc.Size[0], sc.Size[1]
		}
		if len(sc.Segments) == 2 {
			pg.NumSegX, pg.NumSegY = sc.Segments[0], sc.Segments[1]
		}
		if n, ok := vec3(sc.Normal); ok {
			pg.Normal = n
		}
		g = pg
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, sc.Type)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Shape builds the configured shape.
func (sc ShapeConfig) Shape() (*procedural.Shape, error) {
	var s *procedural.Shape
	switch sc.Type {
	case "rectangle":
		if sc.Width <= 0 || sc.Height <= 0 {
			return nil, fmt.Errorf("%w: rectangle.width/height must be positive", procedural.ErrInvalidParameter)
		}
		s = procedural.RectangleShape(sc.Width, sc.Height)
	case "circle":
		segs := sc.Segments
		if segs == 0 {
			segs = 32
		}
		if sc.Radius <= 0 || segs < 3 {
			return nil, fmt.Errorf("%w: circle needs a positive radius and at least 3 segments", procedural.ErrInvalidParameter)
		}
		s = procedural.CircleShape(sc.Radius, segs)
	case "points":
		if len(sc.Points) < 2 {
			return nil, fmt.Errorf("%w: points shape needs at least 2 points", procedural.ErrInvalidParameter)
		}
		s = procedural.NewShape()
		for i, p := range sc.Points {
			if len(p) != 2 {
				return nil, fmt.Errorf("%w: point %d has %d coordinates", procedural.ErrInvalidParameter, i, len(p))
			}
			s.AddPointXY(p[0], p[1])
		}
		if sc.Closed {
			s.Close()
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, sc.Type)
	}

	switch sc.Outside {
	case "":
	case "left":
		s.SetOutSide(procedural.SideLeft)
	case "right":
		s.SetOutSide(procedural.SideRight)
	default:
		return nil, fmt.Errorf("%w: outside must be left or right, got %q", procedural.ErrInvalidParameter, sc.Outside)
	}
	if sc.Hole {
		s.SwitchSide()
	}
	if len(sc.Offset) == 2 {
		s.Translate(procedural.V2(sc.Offset[0], sc.Offset[1]))
	}
	return s, nil
}

func vec3(v []float32) (procedural.Vec3, bool) {
	if len(v) != 3 {
		return procedural.Vec3{}, false
	}
	return procedural.V3(v[0], v[1], v[2]), true
}

// setXYZ copies up to three values into x, y and z; a single value sets all three.
func setXYZ[T any](v []T, x, y, z *T) {
	switch len(v) {
	case 1:
		*x, *y, *z = v[0], v[0], v[0]
	case 3:
		*x, *y, *z = v[0], v[1], v[2]
	}
}

func setIf[T int | float32](v T, dst *T) {
	if v != 0 {
		*dst = v
	}
}
