// Package geomxml decodes the geometry XML input schema of §6.1 using
// the standard library's encoding/xml (see DESIGN.md for why no
// third-party XML library from the pack is wired here). It produces
// cell.Description values for pkg/cellbuild to compile.
package geomxml

import (
	"encoding/xml"
	"strconv"
	"strings"

	"github.com/chazu/lignin/pkg/cell"
	"github.com/chazu/lignin/pkg/cellerr"
)

// Geometry is the top-level <geometry> document: a flat list of <cell>
// elements. Lattice and surface elements are out of scope (§1) and are
// not decoded.
type Geometry struct {
	XMLName xml.Name   `xml:"geometry"`
	Cells   []CellNode `xml:"cell"`
}

// CellNode is the raw XML shape of a <cell> element, field-addressable
// per §6.1. All fields are decoded as strings/attributes and parsed
// explicitly, mirroring pugi::xml_node's check_for_node/get_node_value
// idiom in the original source: presence, not just value, matters.
type CellNode struct {
	ID          *string `xml:"id,attr"`
	Name        string  `xml:"name,attr"`
	Universe    *string `xml:"universe,attr"`
	Fill        *string `xml:"fill,attr"`
	Material    *string `xml:"material"`
	Temperature *string `xml:"temperature"`
	Region      *string `xml:"region"`
	Translation *string `xml:"translation"`
	Rotation    *string `xml:"rotation"`
}

// Parse decodes raw XML bytes into a Geometry document.
func Parse(data []byte) (*Geometry, error) {
	var g Geometry
	if err := xml.Unmarshal(data, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// ToDescription converts a decoded CellNode into a cell.Description,
// performing the presence/parse checks of §4.3 steps 1-9 that don't
// belong to the builder itself (id/fill/material presence, numeric
// parsing of the id, universe, and vectors).
func ToDescription(n CellNode) (cell.Description, error) {
	var d cell.Description

	if n.ID == nil {
		return d, cellerr.New(cellerr.MissingID, 0, "must specify id of cell in geometry XML file")
	}
	id, err := strconv.ParseInt(strings.TrimSpace(*n.ID), 10, 32)
	if err != nil {
		return d, cellerr.New(cellerr.MissingID, 0, "cell id is not a valid integer")
	}
	d.ID = int32(id)
	d.Name = n.Name

	if n.Universe != nil {
		u, err := strconv.ParseInt(strings.TrimSpace(*n.Universe), 10, 32)
		if err != nil {
			return d, cellerr.New(cellerr.BadVectorDimension, d.ID, "universe id is not a valid integer")
		}
		d.UniverseID = int32(u)
	}

	d.HasFill = n.Fill != nil
	if d.HasFill {
		f, err := strconv.ParseInt(strings.TrimSpace(*n.Fill), 10, 32)
		if err != nil {
			return d, cellerr.New(cellerr.FillAmbiguity, d.ID, "fill is not a valid integer")
		}
		d.Fill = int32(f)
	}

	d.HasMaterial = n.Material != nil
	if d.HasMaterial {
		d.Material = fields(*n.Material)
	}

	if n.Temperature != nil {
		for _, f := range fields(*n.Temperature) {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return d, cellerr.New(cellerr.NegativeTemperature, d.ID, "temperature is not a valid number")
			}
			d.Temperature = append(d.Temperature, v)
		}
	}

	if n.Region != nil {
		d.Region = *n.Region
	}

	if n.Translation != nil {
		v, err := parseVec3(*n.Translation)
		if err != nil {
			return d, cellerr.New(cellerr.BadVectorDimension, d.ID, "non-3D translation vector")
		}
		d.Translation = &v
	}

	if n.Rotation != nil {
		v, err := parseVec3(*n.Rotation)
		if err != nil {
			return d, cellerr.New(cellerr.BadVectorDimension, d.ID, "non-3D rotation vector")
		}
		d.RotationDeg = &v
	}

	return d, nil
}

func fields(s string) []string {
	return strings.Fields(s)
}

func parseVec3(s string) ([3]float64, error) {
	var v [3]float64
	parts := fields(s)
	if len(parts) != 3 {
		return v, cellerr.New(cellerr.BadVectorDimension, 0, "expected 3 components")
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}
