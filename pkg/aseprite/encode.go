package aseprite

import (
	"encoding/json"
	"io"

	"github.com/spriteops/asejson/pkg/errors"
)

// Encode writes the canonical JSON form of v to w with two-space
// indentation, followed by a newline. The canonical form is independent
// of the input shape that produced v: frames are always an array, the
// optional metadata lists are always present (as [] when empty), nil
// optionals are omitted, and colors are lowercase "#rrggbbaa" strings.
//
// Encoding a value produced by [DecodeBytes] cannot fail; the error
// return reports writer failures only.
func Encode(w io.Writer, v *SpritesheetData) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(denormalize(v)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode document")
	}
	return nil
}

// EncodeBytes returns the canonical JSON form of v with two-space
// indentation and no trailing newline. The same value always encodes to
// the same bytes.
func EncodeBytes(v *SpritesheetData) ([]byte, error) {
	data, err := json.MarshalIndent(denormalize(v), "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode document")
	}
	return data, nil
}

// EncodeCompact returns the canonical JSON form of v without
// indentation.
func EncodeCompact(v *SpritesheetData) ([]byte, error) {
	data, err := json.Marshal(denormalize(v))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode document")
	}
	return data, nil
}

// Encode-side mirrors of the wire structs. Field order here defines the
// canonical key order of the output.

type jsonDoc struct {
	Frames []jsonFrame `json:"frames"`
	Meta   jsonMeta    `json:"meta"`
}

type jsonFrame struct {
	Filename         string `json:"filename"`
	Frame            Rect   `json:"frame"`
	Rotated          bool   `json:"rotated"`
	Trimmed          bool   `json:"trimmed"`
	SpriteSourceSize Rect   `json:"spriteSourceSize"`
	SourceSize       Size   `json:"sourceSize"`
	Duration         int    `json:"duration"`
}

type jsonMeta struct {
	App       string      `json:"app"`
	Version   string      `json:"version"`
	Image     *string     `json:"image,omitempty"`
	Format    string      `json:"format"`
	Size      Size        `json:"size"`
	Scale     string      `json:"scale"`
	FrameTags []jsonTag   `json:"frameTags"`
	Layers    []jsonLayer `json:"layers"`
	Slices    []jsonSlice `json:"slices"`
}

type jsonTag struct {
	Name      string `json:"name"`
	From      int    `json:"from"`
	To        int    `json:"to"`
	Direction string `json:"direction"`
}

type jsonLayer struct {
	Name      string  `json:"name"`
	Group     *string `json:"group,omitempty"`
	Opacity   *int    `json:"opacity,omitempty"`
	BlendMode *string `json:"blendMode,omitempty"`
	Color     *string `json:"color,omitempty"`
	Data      *string `json:"data,omitempty"`
}

type jsonSlice struct {
	Name  string    `json:"name"`
	Color string    `json:"color"`
	Data  *string   `json:"data,omitempty"`
	Keys  []jsonKey `json:"keys"`
}

type jsonKey struct {
	Frame  int    `json:"frame"`
	Bounds Rect   `json:"bounds"`
	Pivot  *Point `json:"pivot,omitempty"`
	Center *Rect  `json:"center,omitempty"`
}

// denormalize maps the model onto the encode-side wire structs. List
// fields are materialized as empty (never nil) slices so empty lists
// serialize as [] rather than null.
func denormalize(v *SpritesheetData) jsonDoc {
	doc := jsonDoc{
		Frames: make([]jsonFrame, len(v.Frames)),
		Meta: jsonMeta{
			App:       v.Meta.App,
			Version:   v.Meta.Version,
			Image:     v.Meta.Image,
			Format:    v.Meta.Format,
			Size:      v.Meta.Size,
			Scale:     v.Meta.Scale,
			FrameTags: make([]jsonTag, len(v.Meta.FrameTags)),
			Layers:    make([]jsonLayer, len(v.Meta.Layers)),
			Slices:    make([]jsonSlice, len(v.Meta.Slices)),
		},
	}

	for i, f := range v.Frames {
		doc.Frames[i] = jsonFrame{
			Filename:         f.Filename,
			Frame:            f.Frame,
			Rotated:          f.Rotated,
			Trimmed:          f.Trimmed,
			SpriteSourceSize: f.SpriteSourceSize,
			SourceSize:       f.SourceSize,
			Duration:         f.Duration,
		}
	}

	for i, t := range v.Meta.FrameTags {
		doc.Meta.FrameTags[i] = jsonTag{
			Name:      t.Name,
			From:      t.From,
			To:        t.To,
			Direction: t.Direction.String(),
		}
	}

	for i, l := range v.Meta.Layers {
		jl := jsonLayer{
			Name:    l.Name,
			Group:   l.Group,
			Opacity: l.Opacity,
			Data:    l.Data,
		}
		if l.BlendMode != nil {
			s := l.BlendMode.String()
			jl.BlendMode = &s
		}
		if l.Color != nil {
			s := l.Color.String()
			jl.Color = &s
		}
		doc.Meta.Layers[i] = jl
	}

	for i, s := range v.Meta.Slices {
		js := jsonSlice{
			Name:  s.Name,
			Color: s.Color.String(),
			Data:  s.Data,
			Keys:  make([]jsonKey, len(s.Keys)),
		}
		for j, k := range s.Keys {
			js.Keys[j] = jsonKey{
				Frame:  k.Frame,
				Bounds: k.Bounds,
				Pivot:  k.Pivot,
				Center: k.Center,
			}
		}
		doc.Meta.Slices[i] = js
	}

	return doc
}
