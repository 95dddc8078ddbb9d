package models

import (
	"bytes"
	"encoding/json"
)

// SafeURLString is a URL that marshals without HTML escaping, so query
// separators stay readable ("&" rather than "\u0026"). encoding/json
// re-escapes marshaler output unless the encoder has SetEscapeHTML(false),
// so serve it with gin's PureJSON.
type SafeURLString string

func (s SafeURLString) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(string(s)); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (s *SafeURLString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = SafeURLString(str)
	return nil
}
