/*
DESCRIPTION
  encode.go provides encoding of NAL unit records as JSON or YAML.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package analyser

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Encode writes units to w in the given format. The YAML form has the same
// keys and structure as the JSON form.
func Encode(w io.Writer, units []Unit, format string) error {
	if units == nil {
		units = []Unit{}
	}
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(units), "could not encode JSON")
	case FormatYAML:
		b, err := json.Marshal(units)
		if err != nil {
			return errors.Wrap(err, "could not encode JSON")
		}

		// JSON is a subset of YAML, so the node tree keeps the JSON key order;
		// only the flow style needs clearing.
		var n yaml.Node
		err = yaml.Unmarshal(b, &n)
		if err != nil {
			return errors.Wrap(err, "could not decode JSON as YAML")
		}
		clearStyle(&n)

		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(&n)
		if err != nil {
			return errors.Wrap(err, "could not encode YAML")
		}
		return enc.Close()
	}
	return errors.Errorf("unknown format: %s", format)
}

// clearStyle resets the style of n and its descendants so that they are
// written in block style. Strings that would otherwise read as another type
// are still quoted by the encoder.
func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}
