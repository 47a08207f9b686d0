package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Form-driven clients send numeric fields as strings ("3") and leave blank
// inputs as "". These types accept a JSON number or a numeric string.

// flexUint treats null and "" as zero.
type flexUint uint

func (f *flexUint) UnmarshalJSON(b []byte) error {
	s, empty, err := flexText(b)
	if err != nil {
		return err
	}
	if empty {
		*f = 0
		return nil
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}
	*f = flexUint(n)
	return nil
}

// optionalInt is unset for null, a missing key and "".
type optionalInt struct {
	value int
	set   bool
}

func (o *optionalInt) UnmarshalJSON(b []byte) error {
	s, empty, err := flexText(b)
	if err != nil {
		return err
	}
	if empty {
		*o = optionalInt{}
		return nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*o = optionalInt{value: n, set: true}
	return nil
}

func (o optionalInt) Ptr() *int {
	if !o.set {
		return nil
	}
	v := o.value
	return &v
}

// flexText unwraps a JSON string or number into its trimmed text.
func flexText(b []byte) (string, bool, error) {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return "", true, nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return "", false, err
		}
		s = strings.TrimSpace(s)
		return s, s == "", nil
	}

	return string(b), false, nil
}
