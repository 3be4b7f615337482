package catalog

import (
	"github.com/mitchellh/mapstructure"
)

// decodePatch applies an untyped edit payload over an existing record.
// WeaklyTypedInput mirrors the storefront edit dialogs, which submit numeric
// fields as strings.
func decodePatch(patch map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(patch)
}
