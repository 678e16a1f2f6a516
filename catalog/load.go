package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/pjazdzyk/sound-dampening-analyzer/octave"
)

// Catalog keys used as defaults by the component models.
const (
	DefaultDuctMaterial = "galvanizedSheet"
	DefaultBend         = "rectDuct"
	DefaultFan          = "HP_RG"
)

var (
	//go:embed data/materials.yaml
	embeddedMaterials []byte

	//go:embed data/bends.yaml
	embeddedBends []byte

	//go:embed data/fans.yaml
	embeddedFans []byte
)

type materialRecord struct {
	Name         string    `yaml:"name"`
	Description  string    `yaml:"description"`
	SizeFrom     float64   `yaml:"size_from"`
	SizeTo       float64   `yaml:"size_to"`
	Coefficients []float64 `yaml:"coefficients"`
}

type materialFile struct {
	Materials []materialRecord `yaml:"materials"`
}

type fanFile struct {
	Fans []Fan `yaml:"fans"`
}

var (
	loadMaterials = sync.OnceValue(func() []Material { return mustDecodeMaterials("materials", embeddedMaterials) })
	loadBends     = sync.OnceValue(func() []Material { return mustDecodeMaterials("bends", embeddedBends) })
	loadFans      = sync.OnceValue(func() []Fan { return mustDecodeFans(embeddedFans) })
)

// Materials returns a repository of sound absorbing materials.
func Materials() *Repository {
	return NewRepository(loadMaterials()...)
}

// Bends returns a repository of bend natural attenuation tables.
func Bends() *Repository {
	return NewRepository(loadBends()...)
}

// Fans returns a repository of typical fan data.
func Fans() *FanRepository {
	return NewFanRepository(loadFans()...)
}

// DecodeMaterials reads a materials document in the embedded format:
//
//	materials:
//	  - name: carpetFlooring
//	    description: Floor covering
//	    coefficients: [0.00, 0.05, 0.03, 0.04, 0.10, 0.18, 0.18, 0.19]
//
// Size brackets are optional. Every entry is validated.
func DecodeMaterials(data []byte) ([]Material, error) {
	var doc materialFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("catalog: decoding materials: %w", err)
	}

	out := make([]Material, 0, len(doc.Materials))
	for i, rec := range doc.Materials {
		coef, err := octave.FromSlice(rec.Coefficients)
		if err != nil {
			return nil, fmt.Errorf("catalog: material %d (%s): %w", i, rec.Name, err)
		}

		m := Material{
			Name:         rec.Name,
			Description:  rec.Description,
			SizeFrom:     rec.SizeFrom,
			SizeTo:       rec.SizeTo,
			Coefficients: coef,
		}

		err = m.validate()
		if err != nil {
			return nil, err
		}

		out = append(out, m)
	}

	return out, nil
}

// DecodeFans reads a fans document in the embedded format.
func DecodeFans(data []byte) ([]Fan, error) {
	var doc fanFile

	err := yaml.Unmarshal(data, &doc)
	if err != nil {
		return nil, fmt.Errorf("catalog: decoding fans: %w", err)
	}

	return doc.Fans, nil
}

func mustDecodeMaterials(name string, data []byte) []Material {
	m, err := DecodeMaterials(data)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded %s: %v", name, err))
	}

	return m
}

func mustDecodeFans(data []byte) []Fan {
	f, err := DecodeFans(data)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded fans: %v", err))
	}

	return f
}
