package chartdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/linechart/pkg/paint"
)

// Sentinel errors returned (wrapped) by the decoders.
var (
	// ErrMixedShape means a chart mixes single- and multi-valued points.
	ErrMixedShape = errors.New("chartdata: mixed single and multi-series points")
	// ErrMalformedPoint means a point is not an [x, value] pair with a numeric x.
	ErrMalformedPoint = errors.New("chartdata: malformed data point")
	// ErrSeriesWidth means a multi-series value vector has more than SeriesWidth entries.
	ErrSeriesWidth = errors.New("chartdata: too many values in multi-series point")
	// ErrInvalidColor means a chart color is not a recognized CSS color.
	ErrInvalidColor = errors.New("chartdata: invalid chart color")
	// ErrUnknownFormat means the input format could not be determined.
	ErrUnknownFormat = errors.New("chartdata: unknown input format")
)

// Format selects the wire encoding of a definitions file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// rawDefinition is the neutral wire shape shared by the JSON and YAML
// decoders. Points stay untyped until buildSeries inspects them.
type rawDefinition struct {
	Title string `json:"title" yaml:"title"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
	Data  []any  `json:"data" yaml:"data"`
}

// Decode reads a list of chart definitions from r.
func Decode(r io.Reader, format Format) ([]Definition, error) {
	var raws []rawDefinition
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&raws); err != nil {
			return nil, fmt.Errorf("chartdata: parse JSON: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&raws); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, nil
			}
			return nil, fmt.Errorf("chartdata: parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	defs := make([]Definition, 0, len(raws))
	for i, raw := range raws {
		def, err := raw.definition()
		if err != nil {
			return nil, fmt.Errorf("chart %d (%q): %w", i, raw.Title, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// DecodeDefinition decodes a single JSON chart definition object.
func DecodeDefinition(data []byte) (Definition, error) {
	var raw rawDefinition
	if err := json.Unmarshal(data, &raw); err != nil {
		return Definition{}, fmt.Errorf("chartdata: parse JSON: %w", err)
	}
	return raw.definition()
}

func (raw rawDefinition) definition() (Definition, error) {
	if !paint.Valid(raw.Color) {
		return Definition{}, fmt.Errorf("%w: %q", ErrInvalidColor, raw.Color)
	}
	series, err := buildSeries(raw.Data)
	if err != nil {
		return Definition{}, err
	}
	return Definition{Title: raw.Title, Color: raw.Color, Series: series}, nil
}

// buildSeries converts untyped points into a Series. The shape is decided
// by the second element of the first point: a list means multi-series.
func buildSeries(data []any) (Series, error) {
	if len(data) == 0 {
		return Single{}, nil
	}

	first, err := pointPair(data[0], 0)
	if err != nil {
		return nil, err
	}
	if _, isList := first[1].([]any); !isList {
		return buildSingle(data)
	}
	return buildMulti(data)
}

func buildSingle(data []any) (Single, error) {
	points := make([]SinglePoint, 0, len(data))
	for i, raw := range data {
		pair, err := pointPair(raw, i)
		if err != nil {
			return Single{}, err
		}
		x, err := pointX(pair[0], i)
		if err != nil {
			return Single{}, err
		}
		if _, isList := pair[1].([]any); isList {
			return Single{}, fmt.Errorf("%w: point %d is multi-valued in a single-series chart", ErrMixedShape, i)
		}
		y, err := pointValue(pair[1], i)
		if err != nil {
			return Single{}, err
		}
		points = append(points, SinglePoint{X: x, Y: y})
	}
	return Single{Points: points}, nil
}

func buildMulti(data []any) (Multi, error) {
	points := make([]MultiPoint, 0, len(data))
	for i, raw := range data {
		pair, err := pointPair(raw, i)
		if err != nil {
			return Multi{}, err
		}
		x, err := pointX(pair[0], i)
		if err != nil {
			return Multi{}, err
		}

		p := MultiPoint{X: x}
		switch vec := pair[1].(type) {
		case nil:
			// All-absent triple.
		case []any:
			if len(vec) > SeriesWidth {
				return Multi{}, fmt.Errorf("%w: point %d has %d values", ErrSeriesWidth, i, len(vec))
			}
			for j, v := range vec {
				y, err := pointValue(v, i)
				if err != nil {
					return Multi{}, err
				}
				p.Y[j] = y
			}
		default:
			return Multi{}, fmt.Errorf("%w: point %d is single-valued in a multi-series chart", ErrMixedShape, i)
		}
		points = append(points, p)
	}
	return Multi{Points: points}, nil
}

func pointPair(raw any, i int) ([]any, error) {
	pair, ok := raw.([]any)
	if !ok || len(pair) != 2 {
		return nil, fmt.Errorf("%w: point %d is not an [x, value] pair", ErrMalformedPoint, i)
	}
	return pair, nil
}

func pointX(raw any, i int) (float64, error) {
	x, ok := toFloat(raw)
	if !ok {
		return 0, fmt.Errorf("%w: point %d has non-numeric x %v", ErrMalformedPoint, i, raw)
	}
	return x, nil
}

func pointValue(raw any, i int) (Value, error) {
	if raw == nil {
		return None(), nil
	}
	y, ok := toFloat(raw)
	if !ok {
		return Value{}, fmt.Errorf("%w: point %d has non-numeric value %v", ErrMalformedPoint, i, raw)
	}
	return Some(y), nil
}

// toFloat accepts the numeric types produced by encoding/json and yaml.v3.
func toFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint64:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
