package mathie

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// The carriers serialize as fixed tuples of raw readings: a Value as its
// bare number, a Vec2 as [x, y], a Rect as [origin, size]. The unit tag is
// never part of the wire form; the static type re-supplies it at decode
// time, so a codec must preserve the field order exactly to round-trip.

// MarshalJSON encodes the bare reading.
func (v Value[N, U]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.val)
}

// UnmarshalJSON decodes a bare reading.
func (v *Value[N, U]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &v.val)
}

// MarshalYAML encodes the bare reading.
func (v Value[N, U]) MarshalYAML() (interface{}, error) {
	return v.val, nil
}

// UnmarshalYAML decodes a bare reading.
func (v *Value[N, U]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&v.val)
}

// MarshalJSON encodes the tuple [x, y].
func (v Vec2[N, U]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]N{v.x, v.y})
}

// UnmarshalJSON decodes the tuple [x, y], rejecting any other shape.
func (v *Vec2[N, U]) UnmarshalJSON(data []byte) error {
	var lanes []N
	if err := json.Unmarshal(data, &lanes); err != nil {
		return err
	}
	if len(lanes) != 2 {
		return fmt.Errorf("%w: want [x, y], got %d elements", ErrTupleShape, len(lanes))
	}
	v.x, v.y = lanes[0], lanes[1]
	return nil
}

// MarshalYAML encodes the tuple [x, y].
func (v Vec2[N, U]) MarshalYAML() (interface{}, error) {
	return [2]N{v.x, v.y}, nil
}

// UnmarshalYAML decodes the tuple [x, y], rejecting any other shape.
func (v *Vec2[N, U]) UnmarshalYAML(node *yaml.Node) error {
	var lanes []N
	if err := node.Decode(&lanes); err != nil {
		return err
	}
	if len(lanes) != 2 {
		return fmt.Errorf("%w: want [x, y], got %d elements", ErrTupleShape, len(lanes))
	}
	v.x, v.y = lanes[0], lanes[1]
	return nil
}

// MarshalJSON encodes the nested tuple [[ox, oy], [sx, sy]] (origin, size).
func (r Rect[N, U]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2][2]N{
		{r.origin.x, r.origin.y},
		{r.size.x, r.size.y},
	})
}

// UnmarshalJSON decodes [[ox, oy], [sx, sy]], rejecting any other shape.
func (r *Rect[N, U]) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 2 {
		return fmt.Errorf("%w: want [origin, size], got %d elements", ErrTupleShape, len(parts))
	}
	if err := r.origin.UnmarshalJSON(parts[0]); err != nil {
		return err
	}
	return r.size.UnmarshalJSON(parts[1])
}

// MarshalYAML encodes the nested tuple [[ox, oy], [sx, sy]] (origin, size).
func (r Rect[N, U]) MarshalYAML() (interface{}, error) {
	return [2][2]N{
		{r.origin.x, r.origin.y},
		{r.size.x, r.size.y},
	}, nil
}

// UnmarshalYAML decodes [[ox, oy], [sx, sy]], rejecting any other shape.
func (r *Rect[N, U]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 2 {
		return fmt.Errorf("%w: want [origin, size]", ErrTupleShape)
	}
	if err := r.origin.UnmarshalYAML(node.Content[0]); err != nil {
		return err
	}
	return r.size.UnmarshalYAML(node.Content[1])
}
