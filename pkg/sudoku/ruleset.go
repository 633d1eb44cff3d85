package sudoku

import (
	"encoding/json"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Ruleset files are YAML. Operators and group sets serialize as their
// lowercase names; groups may be omitted and defaults to rows-cols-boxes:
//
//	groups: rows-cols
//	fixed:
//	  - {row: 8, col: 8, value: 7}
//	rules:
//	  - op: sum
//	    target: 21
//	    cells:
//	      - {row: 1, col: 3}
//	      - {row: 1, col: 4}
//	      - {row: 1, col: 5}

// MarshalJSON renders the operator as its name. sigs.k8s.io/yaml routes
// YAML through JSON, so this covers both encodings.
func (o Op) MarshalJSON() ([]byte, error) {
	switch o {
	case OpSum, OpDifference, OpProduct, OpRatio:
		return json.Marshal(o.String())
	default:
		return nil, fmt.Errorf("%w: unsupported operator %v", ErrInvalidRule, o)
	}
}

// UnmarshalJSON parses an operator name.
func (o *Op) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("%w: operator must be a string", ErrInvalidRule)
	}
	op, err := ParseOp(name)
	if err != nil {
		return err
	}
	*o = op
	return nil
}

// MarshalJSON renders the group set as its name.
func (gs GroupSet) MarshalJSON() ([]byte, error) {
	switch gs {
	case GroupsAll, GroupsRowsCols:
		return json.Marshal(gs.String())
	default:
		return nil, fmt.Errorf("%w: unsupported group set %v", ErrInvalidRule, gs)
	}
}

// UnmarshalJSON parses a group-set name.
func (gs *GroupSet) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("%w: group set must be a string", ErrInvalidRule)
	}
	parsed, err := ParseGroupSet(name)
	if err != nil {
		return err
	}
	*gs = parsed
	return nil
}

// ParseRuleset decodes and validates a YAML ruleset.
func ParseRuleset(data []byte) (Ruleset, error) {
	var rs Ruleset
	if err := yaml.Unmarshal(data, &rs); err != nil {
		return Ruleset{}, fmt.Errorf("%w: %v", ErrInvalidRule, err)
	}
	if err := rs.Validate(); err != nil {
		return Ruleset{}, err
	}
	return rs, nil
}

// LoadRuleset reads and parses a ruleset file.
func LoadRuleset(path string) (Ruleset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Ruleset{}, err
	}
	return ParseRuleset(data)
}

// EncodeRuleset renders a ruleset as YAML, the inverse of ParseRuleset.
func EncodeRuleset(rs Ruleset) ([]byte, error) {
	return yaml.Marshal(rs)
}
