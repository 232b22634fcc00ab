package model

import "encoding/json"

// NormalizedFunction is the normalized signature of a Move function.
// Parameter types stay in their JSON form; they are only displayed.
type NormalizedFunction struct {
	Visibility     string            `json:"visibility"`
	IsEntry        bool              `json:"is_entry"`
	TypeParameters []json.RawMessage `json:"type_parameters"`
	Parameters     []json.RawMessage `json:"parameters"`
	Return         []json.RawMessage `json:"return_"`
}
