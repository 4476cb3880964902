package aseprite

// Rect is an axis-aligned box with non-negative coordinates, used for
// frame bounds and slice bounds/centers.
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Point is a 2D position with non-negative coordinates, used for slice
// pivots.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is a width/height pair.
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// FrameData holds the geometry and timing of a single frame. When the
// frame is untrimmed and the source offset is zero, Frame equals
// SpriteSourceSize.
type FrameData struct {
	// Frame is the frame's bounds within the packed sheet image.
	Frame Rect

	// Rotated reports whether the frame is stored rotated in the sheet.
	Rotated bool

	// Trimmed reports whether transparent borders were trimmed away.
	Trimmed bool

	// SpriteSourceSize positions the trimmed frame within the original
	// sprite canvas.
	SpriteSourceSize Rect

	// SourceSize is the original, untrimmed sprite canvas size.
	SourceSize Size

	// Duration is the frame's display time in milliseconds.
	Duration int
}

// Frame is a named frame. Filename is the join key when the document
// supplies frames as an object keyed by filename.
type Frame struct {
	Filename string
	FrameData
}

// Frametag is a named animation range over frame indices From through To
// inclusive. The decoder does not require From <= To; see [Lint].
type Frametag struct {
	Name      string
	From      int
	To        int
	Direction Direction
}

// Layer is a paint layer or group node. Group names the parent layer,
// nil meaning root. Opacity and BlendMode are nil exactly when the JSON
// omitted them, which is typical for group nodes; they are independently
// optional and no cross-field consistency is enforced.
type Layer struct {
	Name      string
	Group     *string
	Opacity   *int
	BlendMode *BlendMode
	Color     *Color
	Data      *string
}

// SliceKey is a slice's geometry at one frame. Center is present only
// for nine-patch slices.
type SliceKey struct {
	Frame  int
	Bounds Rect
	Pivot  *Point
	Center *Rect
}

// Slice is a named region overlay. One slice may carry multiple keys
// across frames.
type Slice struct {
	Name  string
	Color Color
	Data  *string
	Keys  []SliceKey
}

// Metadata is the sheet-level information block. FrameTags, Layers, and
// Slices are never nil: both an absent key and an empty array decode to
// an empty slice.
type Metadata struct {
	App       string
	Version   string
	Format    string
	Size      Size
	Scale     string
	Image     *string
	FrameTags []Frametag
	Layers    []Layer
	Slices    []Slice
}

// SpritesheetData is the root of the decoded document: an ordered frame
// sequence plus sheet metadata. Values are plain trees with no cycles or
// back-references and are safe to share between goroutines as long as no
// caller mutates them.
type SpritesheetData struct {
	Frames []Frame
	Meta   Metadata
}

// Tag returns the first frame tag with the given name, or nil if the
// sheet has no such tag.
func (s *SpritesheetData) Tag(name string) *Frametag {
	for i := range s.Meta.FrameTags {
		if s.Meta.FrameTags[i].Name == name {
			return &s.Meta.FrameTags[i]
		}
	}
	return nil
}

// Slice returns the first slice with the given name, or nil if the sheet
// has no such slice.
func (s *SpritesheetData) Slice(name string) *Slice {
	for i := range s.Meta.Slices {
		if s.Meta.Slices[i].Name == name {
			return &s.Meta.Slices[i]
		}
	}
	return nil
}

// TotalDuration returns the summed display time of all frames in
// milliseconds.
func (s *SpritesheetData) TotalDuration() int {
	var total int
	for i := range s.Frames {
		total += s.Frames[i].Duration
	}
	return total
}
