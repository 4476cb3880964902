package aseprite

import "fmt"

// Problem is a single advisory finding from [Lint]. Problems never stop
// a decode; they flag documents that are well-formed but internally
// inconsistent.
type Problem struct {
	Path    string // dotted path of the offending field
	Message string
}

// String returns "path: message".
func (p Problem) String() string {
	return p.Path + ": " + p.Message
}

// Lint reports consistency issues the decoder deliberately does not
// enforce: frame tags whose range is reversed or out of bounds, slice
// keys referencing frames the sheet does not have, layers whose group
// names no known layer, duplicate tag names, and zero-duration frames.
// Lint never mutates v.
func Lint(v *SpritesheetData) []Problem {
	var problems []Problem
	n := len(v.Frames)

	seenTags := make(map[string]bool, len(v.Meta.FrameTags))
	for i, tag := range v.Meta.FrameTags {
		path := fmt.Sprintf("meta.frameTags[%d]", i)
		if tag.From > tag.To {
			problems = append(problems, Problem{
				Path:    path,
				Message: fmt.Sprintf("tag %q has from %d > to %d", tag.Name, tag.From, tag.To),
			})
		}
		if tag.To >= n {
			problems = append(problems, Problem{
				Path:    path + ".to",
				Message: fmt.Sprintf("tag %q ends at frame %d but the sheet has %d frames", tag.Name, tag.To, n),
			})
		}
		if seenTags[tag.Name] {
			problems = append(problems, Problem{
				Path:    path + ".name",
				Message: fmt.Sprintf("duplicate tag name %q", tag.Name),
			})
		}
		seenTags[tag.Name] = true
	}

	layerNames := make(map[string]bool, len(v.Meta.Layers))
	for i := range v.Meta.Layers {
		layerNames[v.Meta.Layers[i].Name] = true
	}
	for i, layer := range v.Meta.Layers {
		if layer.Group != nil && !layerNames[*layer.Group] {
			problems = append(problems, Problem{
				Path:    fmt.Sprintf("meta.layers[%d].group", i),
				Message: fmt.Sprintf("layer %q references unknown group %q", layer.Name, *layer.Group),
			})
		}
	}

	for i, slice := range v.Meta.Slices {
		for j, key := range slice.Keys {
			if key.Frame >= n {
				problems = append(problems, Problem{
					Path:    fmt.Sprintf("meta.slices[%d].keys[%d].frame", i, j),
					Message: fmt.Sprintf("slice %q keys frame %d but the sheet has %d frames", slice.Name, key.Frame, n),
				})
			}
		}
	}

	for i, frame := range v.Frames {
		if frame.Duration == 0 {
			problems = append(problems, Problem{
				Path:    fmt.Sprintf("frames[%d].duration", i),
				Message: fmt.Sprintf("frame %q has zero duration", frame.Filename),
			})
		}
	}

	return problems
}
