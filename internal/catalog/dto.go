package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// movieDTO is the wire representation of a movie. Some catalog backends are
// loose about types: ids arrive as numbers or strings and years occasionally
// as quoted digits, so both fields decode tolerantly.
type movieDTO struct {
	ID    flexString `json:"id"`
	Title string     `json:"title"`
	Year  flexInt    `json:"year"`
	Genre string     `json:"genre"`
}

// flexString decodes a JSON string or number into its text form
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = flexString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = flexString(num.String())
	return nil
}

// flexInt decodes a JSON number or numeric string. Anything non-numeric
// decodes to zero rather than failing the whole payload; the display layer
// renders zero years as "N/A".
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		v, err := strconv.Atoi(str)
		if err != nil {
			*n = 0
			return nil
		}
		*n = flexInt(v)
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		*n = 0
		return nil
	}
	*n = flexInt(v)
	return nil
}
