package aseprite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spriteops/asejson/pkg/errors"
)

// Decode reads a sprite-sheet JSON document from r and decodes it.
// See [DecodeBytes] for the validation contract.
func Decode(r io.Reader) (*SpritesheetData, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read document")
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes a sprite-sheet JSON document into a validated
// SpritesheetData. Decoding is all-or-nothing: on any failure the
// returned error is a [*errors.Error] with a machine-readable code and
// the dotted path of the offending field, and no partial value is
// returned. Unknown object keys are ignored for forward compatibility
// with newer exporter versions.
func DecodeBytes(data []byte) (*SpritesheetData, error) {
	var doc wireDoc
	if err := unmarshal(data, &doc, ""); err != nil {
		return nil, err
	}

	frames, err := decodeFrames(doc.Frames)
	if err != nil {
		return nil, err
	}

	if doc.Meta == nil {
		return nil, errors.New(errors.ErrCodeMissingField, "meta", "field is required")
	}
	meta, err := doc.Meta.normalize()
	if err != nil {
		return nil, err
	}

	return &SpritesheetData{Frames: frames, Meta: meta}, nil
}

// Wire structs mirror the vendor JSON one-to-one. Required fields are
// pointers so that absence survives unmarshalling and can be reported
// as MISSING_REQUIRED_FIELD instead of silently zeroing.

type wireDoc struct {
	Frames json.RawMessage `json:"frames"`
	Meta   *wireMeta       `json:"meta"`
}

type wireRect struct {
	X *int `json:"x"`
	Y *int `json:"y"`
	W *int `json:"w"`
	H *int `json:"h"`
}

type wirePoint struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

type wireSize struct {
	W *int `json:"w"`
	H *int `json:"h"`
}

type wireFrame struct {
	Filename         *string   `json:"filename"`
	Frame            *wireRect `json:"frame"`
	Rotated          *bool     `json:"rotated"`
	Trimmed          *bool     `json:"trimmed"`
	SpriteSourceSize *wireRect `json:"spriteSourceSize"`
	SourceSize       *wireSize `json:"sourceSize"`
	Duration         *int      `json:"duration"`
}

type wireMeta struct {
	App       *string     `json:"app"`
	Version   *string     `json:"version"`
	Format    *string     `json:"format"`
	Size      *wireSize   `json:"size"`
	Scale     *string     `json:"scale"`
	Image     *string     `json:"image"`
	FrameTags []wireTag   `json:"frameTags"`
	Layers    []wireLayer `json:"layers"`
	Slices    []wireSlice `json:"slices"`
}

type wireTag struct {
	Name      *string `json:"name"`
	From      *int    `json:"from"`
	To        *int    `json:"to"`
	Direction *string `json:"direction"`
}

type wireLayer struct {
	Name      *string `json:"name"`
	Group     *string `json:"group"`
	Opacity   *int    `json:"opacity"`
	BlendMode *string `json:"blendMode"`
	Color     *string `json:"color"`
	Data      *string `json:"data"`
}

type wireSlice struct {
	Name  *string   `json:"name"`
	Color *string   `json:"color"`
	Data  *string   `json:"data"`
	Keys  []wireKey `json:"keys"`
}

type wireKey struct {
	Frame  *int       `json:"frame"`
	Bounds *wireRect  `json:"bounds"`
	Pivot  *wirePoint `json:"pivot"`
	Center *wireRect  `json:"center"`
}

// unmarshal wraps json.Unmarshal, translating type errors into
// TYPE_MISMATCH with a field path and everything else (syntax errors,
// truncated input) into INVALID_INPUT.
func unmarshal(data []byte, v any, pathPrefix string) error {
	err := json.Unmarshal(data, v)
	if err == nil {
		return nil
	}
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
		path := typeErr.Field
		switch {
		case path == "":
			path = pathPrefix
		case pathPrefix != "":
			path = pathPrefix + "." + path
		}
		return errors.New(errors.ErrCodeTypeMismatch, path, "unexpected JSON %s", typeErr.Value)
	}
	return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid JSON")
}

// decodeFrames dispatches on the runtime shape of the frames value.
// Array input decodes in array order; object input decodes in document
// order via the token reader (plain JSON does not guarantee object-key
// order, so that order is a property of this parser, not of the format).
// The pass is strictly forward with no look-ahead beyond the value in
// hand.
func decodeFrames(raw json.RawMessage) ([]Frame, error) {
	if raw == nil {
		return nil, errors.New(errors.ErrCodeMissingField, "frames", "field is required")
	}
	switch firstByte(raw) {
	case '[':
		return decodeFrameArray(raw)
	case '{':
		return decodeFrameObject(raw)
	default:
		return nil, errors.New(errors.ErrCodeMalformedShape, "frames", "frames must be a JSON array or object")
	}
}

// firstByte returns the first non-whitespace byte of raw, or 0.
func firstByte(raw []byte) byte {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return c
	}
	return 0
}

func decodeFrameArray(raw []byte) ([]Frame, error) {
	var elems []wireFrame
	if err := unmarshal(raw, &elems, "frames"); err != nil {
		return nil, err
	}

	frames := make([]Frame, 0, len(elems))
	for i := range elems {
		f, err := elems[i].normalize(fmt.Sprintf("frames[%d]", i), nil)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

func decodeFrameObject(raw []byte) ([]Frame, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil { // opening brace
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid JSON")
	}

	frames := []Frame{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid JSON")
		}
		filename := tok.(string) // object keys are always strings
		path := fmt.Sprintf("frames[%q]", filename)

		var wf wireFrame
		if err := dec.Decode(&wf); err != nil {
			if typeErr, ok := err.(*json.UnmarshalTypeError); ok {
				p := path
				if typeErr.Field != "" {
					p += "." + typeErr.Field
				}
				return nil, errors.New(errors.ErrCodeTypeMismatch, p, "unexpected JSON %s", typeErr.Value)
			}
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid JSON")
		}

		f, err := wf.normalize(path, &filename)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// normalize validates a wire frame. filename is non-nil when the frame
// came from the object shape, in which case the object key wins and any
// filename field inside the value is ignored.
func (w *wireFrame) normalize(path string, filename *string) (Frame, error) {
	var f Frame
	var err error

	if filename != nil {
		f.Filename = *filename
	} else if f.Filename, err = reqString(w.Filename, path+".filename"); err != nil {
		return Frame{}, err
	}

	if f.Frame, err = reqRect(w.Frame, path+".frame"); err != nil {
		return Frame{}, err
	}
	if f.Rotated, err = reqBool(w.Rotated, path+".rotated"); err != nil {
		return Frame{}, err
	}
	if f.Trimmed, err = reqBool(w.Trimmed, path+".trimmed"); err != nil {
		return Frame{}, err
	}
	if f.SpriteSourceSize, err = reqRect(w.SpriteSourceSize, path+".spriteSourceSize"); err != nil {
		return Frame{}, err
	}
	if f.SourceSize, err = reqSize(w.SourceSize, path+".sourceSize"); err != nil {
		return Frame{}, err
	}
	if f.Duration, err = reqInt(w.Duration, path+".duration"); err != nil {
		return Frame{}, err
	}
	return f, nil
}

// normalize validates the meta block and applies the absent-means-empty
// defaulting for the optional list fields.
func (w *wireMeta) normalize() (Metadata, error) {
	var m Metadata
	var err error

	if m.App, err = reqString(w.App, "meta.app"); err != nil {
		return Metadata{}, err
	}
	if m.Version, err = reqString(w.Version, "meta.version"); err != nil {
		return Metadata{}, err
	}
	if m.Format, err = reqString(w.Format, "meta.format"); err != nil {
		return Metadata{}, err
	}
	if m.Size, err = reqSize(w.Size, "meta.size"); err != nil {
		return Metadata{}, err
	}
	// Scale stays a raw string: the exporter emits it as text and this
	// codec does not coerce or validate its content.
	if m.Scale, err = reqString(w.Scale, "meta.scale"); err != nil {
		return Metadata{}, err
	}
	m.Image = w.Image

	m.FrameTags = make([]Frametag, 0, len(w.FrameTags))
	for i := range w.FrameTags {
		tag, err := w.FrameTags[i].normalize(fmt.Sprintf("meta.frameTags[%d]", i))
		if err != nil {
			return Metadata{}, err
		}
		m.FrameTags = append(m.FrameTags, tag)
	}

	m.Layers = make([]Layer, 0, len(w.Layers))
	for i := range w.Layers {
		layer, err := w.Layers[i].normalize(fmt.Sprintf("meta.layers[%d]", i))
		if err != nil {
			return Metadata{}, err
		}
		m.Layers = append(m.Layers, layer)
	}

	m.Slices = make([]Slice, 0, len(w.Slices))
	for i := range w.Slices {
		slice, err := w.Slices[i].normalize(fmt.Sprintf("meta.slices[%d]", i))
		if err != nil {
			return Metadata{}, err
		}
		m.Slices = append(m.Slices, slice)
	}

	return m, nil
}

func (w *wireTag) normalize(path string) (Frametag, error) {
	var t Frametag
	var err error

	if t.Name, err = reqString(w.Name, path+".name"); err != nil {
		return Frametag{}, err
	}
	if t.From, err = reqInt(w.From, path+".from"); err != nil {
		return Frametag{}, err
	}
	if t.To, err = reqInt(w.To, path+".to"); err != nil {
		return Frametag{}, err
	}

	dir, err := reqString(w.Direction, path+".direction")
	if err != nil {
		return Frametag{}, err
	}
	if t.Direction, err = ParseDirection(path+".direction", dir); err != nil {
		return Frametag{}, err
	}
	return t, nil
}

// normalize validates a layer. Opacity and blendMode are independently
// optional: group nodes typically omit both, but a document carrying
// only one is accepted as-is.
func (w *wireLayer) normalize(path string) (Layer, error) {
	var l Layer
	var err error

	if l.Name, err = reqString(w.Name, path+".name"); err != nil {
		return Layer{}, err
	}
	l.Group = w.Group
	l.Data = w.Data

	if l.Opacity, err = optInt(w.Opacity, path+".opacity"); err != nil {
		return Layer{}, err
	}
	if w.BlendMode != nil {
		mode, err := ParseBlendMode(path+".blendMode", *w.BlendMode)
		if err != nil {
			return Layer{}, err
		}
		l.BlendMode = &mode
	}
	if w.Color != nil {
		c, err := ParseColor(path+".color", *w.Color)
		if err != nil {
			return Layer{}, err
		}
		l.Color = &c
	}
	return l, nil
}

func (w *wireSlice) normalize(path string) (Slice, error) {
	var s Slice
	var err error

	if s.Name, err = reqString(w.Name, path+".name"); err != nil {
		return Slice{}, err
	}
	colorText, err := reqString(w.Color, path+".color")
	if err != nil {
		return Slice{}, err
	}
	if s.Color, err = ParseColor(path+".color", colorText); err != nil {
		return Slice{}, err
	}
	s.Data = w.Data

	if w.Keys == nil {
		return Slice{}, errors.New(errors.ErrCodeMissingField, path+".keys", "field is required")
	}
	s.Keys = make([]SliceKey, 0, len(w.Keys))
	for i := range w.Keys {
		key, err := w.Keys[i].normalize(fmt.Sprintf("%s.keys[%d]", path, i))
		if err != nil {
			return Slice{}, err
		}
		s.Keys = append(s.Keys, key)
	}
	return s, nil
}

func (w *wireKey) normalize(path string) (SliceKey, error) {
	var k SliceKey
	var err error

	if k.Frame, err = reqInt(w.Frame, path+".frame"); err != nil {
		return SliceKey{}, err
	}
	if k.Bounds, err = reqRect(w.Bounds, path+".bounds"); err != nil {
		return SliceKey{}, err
	}
	if w.Pivot != nil {
		p, err := reqPoint(w.Pivot, path+".pivot")
		if err != nil {
			return SliceKey{}, err
		}
		k.Pivot = &p
	}
	if w.Center != nil {
		c, err := reqRect(w.Center, path+".center")
		if err != nil {
			return SliceKey{}, err
		}
		k.Center = &c
	}
	return k, nil
}

// Field-level helpers. Absence is MISSING_REQUIRED_FIELD; a negative
// number where the format requires a non-negative one is TYPE_MISMATCH.

func reqString(p *string, path string) (string, error) {
	if p == nil {
		return "", errors.New(errors.ErrCodeMissingField, path, "field is required")
	}
	return *p, nil
}

func reqBool(p *bool, path string) (bool, error) {
	if p == nil {
		return false, errors.New(errors.ErrCodeMissingField, path, "field is required")
	}
	return *p, nil
}

func reqInt(p *int, path string) (int, error) {
	if p == nil {
		return 0, errors.New(errors.ErrCodeMissingField, path, "field is required")
	}
	if *p < 0 {
		return 0, errors.New(errors.ErrCodeTypeMismatch, path, "must be non-negative, got %d", *p)
	}
	return *p, nil
}

func optInt(p *int, path string) (*int, error) {
	if p == nil {
		return nil, nil
	}
	v, err := reqInt(p, path)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func reqRect(w *wireRect, path string) (Rect, error) {
	if w == nil {
		return Rect{}, errors.New(errors.ErrCodeMissingField, path, "field is required")
	}
	var r Rect
	var err error
	if r.X, err = reqInt(w.X, path+".x"); err != nil {
		return Rect{}, err
	}
	if r.Y, err = reqInt(w.Y, path+".y"); err != nil {
		return Rect{}, err
	}
	if r.W, err = reqInt(w.W, path+".w"); err != nil {
		return Rect{}, err
	}
	if r.H, err = reqInt(w.H, path+".h"); err != nil {
		return Rect{}, err
	}
	return r, nil
}

func reqPoint(w *wirePoint, path string) (Point, error) {
	if w == nil {
		return Point{}, errors.New(errors.ErrCodeMissingField, path, "field is required")
	}
	var p Point
	var err error
	if p.X, err = reqInt(w.X, path+".x"); err != nil {
		return Point{}, err
	}
	if p.Y, err = reqInt(w.Y, path+".y"); err != nil {
		return Point{}, err
	}
	return p, nil
}

func reqSize(w *wireSize, path string) (Size, error) {
	if w == nil {
		return Size{}, errors.New(errors.ErrCodeMissingField, path, "field is required")
	}
	var s Size
	var err error
	if s.W, err = reqInt(w.W, path+".w"); err != nil {
		return Size{}, err
	}
	if s.H, err = reqInt(w.H, path+".h"); err != nil {
		return Size{}, err
	}
	return s, nil
}
