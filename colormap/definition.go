package colormap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidDefinition is returned for malformed JSON map definitions.
var ErrInvalidDefinition = errors.New("colormap: invalid definition")

// ParseDefinition parses one color map from JSON.
//
// A gradient is an array of stops, each a [t, color] pair where color is an
// [r, g, b] array or a "#RRGGBB" string:
//
//	[[0, [0, 0, 0]], [0.5, "#FF8800"], [1, [255, 255, 255]]]
//
// A banded map is an object:
//
//	{"bands": [{"hex": "#FFFFFF", "weight": 1}, ...],
//	 "repeatCount": 5, "smoothness": 0.12}
//
// "w" and "count" are accepted as short forms of "weight" and
// "repeatCount". A missing repeat count means 1.
func ParseDefinition(name string, data []byte) (*Map, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %q is empty", ErrInvalidDefinition, name)
	}

	switch data[0] {
	case '[':
		stops, err := decodeStops(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidDefinition, name, err)
		}
		return NewGradient(name, stops)
	case '{':
		def, err := decodeBanded(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidDefinition, name, err)
		}
		return NewBanded(name, def)
	default:
		return nil, fmt.Errorf("%w: %q must be an array or an object", ErrInvalidDefinition, name)
	}
}

// ParseDefinitions parses an object mapping names to definitions. The maps
// are returned sorted by name.
func ParseDefinitions(data []byte) ([]*Map, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	slices.Sort(names)

	maps := make([]*Map, 0, len(names))
	for _, name := range names {
		m, err := ParseDefinition(name, raw[name])
		if err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}
	return maps, nil
}

func decodeStops(data []byte) ([]Stop, error) {
	var raw [][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	stops := make([]Stop, len(raw))
	for i, pair := range raw {
		if len(pair) != 2 {
			return nil, fmt.Errorf("stop %d has %d elements, want [t, color]", i, len(pair))
		}
		if err := json.Unmarshal(pair[0], &stops[i].T); err != nil {
			return nil, fmt.Errorf("stop %d position: %w", i, err)
		}
		c, err := decodeColor(pair[1])
		if err != nil {
			return nil, fmt.Errorf("stop %d: %w", i, err)
		}
		stops[i].Color = c
	}
	return stops, nil
}

func decodeColor(data json.RawMessage) (Color, error) {
	var hex string
	if err := json.Unmarshal(data, &hex); err == nil {
		return ParseHex(hex)
	}
	var rgb [3]float64
	if err := json.Unmarshal(data, &rgb); err != nil {
		return Color{}, fmt.Errorf("color must be [r, g, b] or a hex string: %w", err)
	}
	return RGB(rgb[0], rgb[1], rgb[2]), nil
}

type bandJSON struct {
	Hex    string   `json:"hex"`
	Weight *float64 `json:"weight"`
	W      *float64 `json:"w"`
}

type bandedJSON struct {
	Bands       []bandJSON `json:"bands"`
	RepeatCount *float64   `json:"repeatCount"`
	Count       *float64   `json:"count"`
	Smoothness  float64    `json:"smoothness"`
}

func decodeBanded(data []byte) (Banded, error) {
	var raw bandedJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return Banded{}, err
	}

	def := Banded{Count: 1, Smoothness: raw.Smoothness}
	switch {
	case raw.RepeatCount != nil:
		def.Count = *raw.RepeatCount
	case raw.Count != nil:
		def.Count = *raw.Count
	}

	def.Bands = make([]Band, len(raw.Bands))
	for i, b := range raw.Bands {
		c, err := ParseHex(b.Hex)
		if err != nil {
			return Banded{}, fmt.Errorf("band %d: %w", i, err)
		}
		w := 1.0
		switch {
		case b.Weight != nil:
			w = *b.Weight
		case b.W != nil:
			w = *b.W
		}
		def.Bands[i] = Band{Color: c, Weight: w}
	}
	return def, nil
}
