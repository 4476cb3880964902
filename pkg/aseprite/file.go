package aseprite

import (
	"os"

	"github.com/spriteops/asejson/pkg/errors"
)

// DecodeFile reads the sprite-sheet JSON document at path and decodes
// it. It is a convenience wrapper around [DecodeBytes].
func DecodeFile(path string) (*SpritesheetData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return DecodeBytes(data)
}

// EncodeFile writes the canonical JSON form of v to a file at path,
// creating or truncating it. See [Encode] for the output format.
func EncodeFile(path string, v *SpritesheetData) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return Encode(f, v)
}
