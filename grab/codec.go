package grab

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type fingersDoc struct {
	Thumb  interface{} `yaml:"thumb,omitempty" json:"thumb,omitempty"`
	Index  interface{} `yaml:"index,omitempty" json:"index,omitempty"`
	Middle interface{} `yaml:"middle,omitempty" json:"middle,omitempty"`
	Ring   interface{} `yaml:"ring,omitempty" json:"ring,omitempty"`
	Pinky  interface{} `yaml:"pinky,omitempty" json:"pinky,omitempty"`
}

func (d *fingersDoc) values() [FingerCount]interface{} {
	return [FingerCount]interface{}{d.Thumb, d.Index, d.Middle, d.Ring, d.Pinky}
}

type ruleDoc struct {
	Fingers  fingersDoc  `yaml:"fingers" json:"fingers"`
	Unselect interface{} `yaml:"unselect,omitempty" json:"unselect,omitempty"`
}

func newRuleDoc(r GrabbingRule) ruleDoc {
	return ruleDoc{
		Fingers: fingersDoc{
			Thumb:  r.requirements[Thumb].String(),
			Index:  r.requirements[Index].String(),
			Middle: r.requirements[Middle].String(),
			Ring:   r.requirements[Ring].String(),
			Pinky:  r.requirements[Pinky].String(),
		},
		Unselect: r.unselectMode.String(),
	}
}

// rule treats absent fingers as ignored and an absent unselect policy as all-released.
func (doc *ruleDoc) rule() (rule GrabbingRule, err error) {
	for idx, v := range doc.Fingers.values() {
		if v == nil {
			continue
		}

		requirement, e := ParseFingerRequirement(v)
		if e != nil {
			err = fmt.Errorf("%s: %w", Fingers[idx], e)

			return
		}

		rule.requirements[idx] = requirement
	}

	rule.unselectMode, err = ParseFingerUnselectMode(doc.Unselect)

	return
}

func (r GrabbingRule) MarshalYAML() (interface{}, error) {
	return newRuleDoc(r), nil
}

func (r *GrabbingRule) UnmarshalYAML(value *yaml.Node) error {
	var doc ruleDoc

	if err := value.Decode(&doc); err != nil {
		return err
	}

	rule, err := doc.rule()
	if err != nil {
		return err
	}

	*r = rule

	return nil
}

func (r GrabbingRule) MarshalJSON() ([]byte, error) {
	return json.Marshal(newRuleDoc(r))
}

func (r *GrabbingRule) UnmarshalJSON(d []byte) error {
	var doc ruleDoc

	if err := json.Unmarshal(d, &doc); err != nil {
		return err
	}

	rule, err := doc.rule()
	if err != nil {
		return err
	}

	*r = rule

	return nil
}

func EncodeRule(rule GrabbingRule) ([]byte, error) {
	return yaml.Marshal(rule)
}

func DecodeRule(d []byte) (rule GrabbingRule, err error) {
	err = yaml.Unmarshal(d, &rule)

	return
}
