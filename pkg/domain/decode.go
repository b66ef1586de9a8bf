package domain

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// DecodePayload decodes a map-shaped action payload into out, which must be a
// pointer to a struct or map. Payloads often cross process or serialization
// boundaries as map[string]any; this restores them to typed structs without
// every reducer hand-rolling the conversion. Field names match via the
// "json" tag.
func DecodePayload(a Action, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "json",
	})
	if err != nil {
		return fmt.Errorf("build payload decoder: %w", err)
	}
	if err := dec.Decode(a.Payload); err != nil {
		return fmt.Errorf("decode payload of %q: %w", a.Type, err)
	}
	return nil
}
