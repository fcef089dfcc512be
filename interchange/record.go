package interchange

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fortdoc-labs/fortdoc/entity"
)

// Record is one entity in an interchange document. Only the whitelisted
// fields below ever cross project boundaries; in particular no parent
// reference is serialized, so a record subtree is self-contained.
type Record struct {
	Name        string   `json:"name"`
	ExternalURL string   `json:"external_url"`
	Obj         string   `json:"obj"`
	Proctype    string   `json:"proctype,omitempty"`
	Extends     *Extends `json:"extends,omitempty"`

	PubProcs      RecordSet `json:"pub_procs,omitempty"`
	PubAbsInts    RecordSet `json:"pub_absints,omitempty"`
	PubTypes      RecordSet `json:"pub_types,omitempty"`
	PubVars       RecordSet `json:"pub_vars,omitempty"`
	Functions     RecordSet `json:"functions,omitempty"`
	Subroutines   RecordSet `json:"subroutines,omitempty"`
	Interfaces    RecordSet `json:"interfaces,omitempty"`
	AbsInterfaces RecordSet `json:"absinterfaces,omitempty"`
	Types         RecordSet `json:"types,omitempty"`
	Variables     RecordSet `json:"variables,omitempty"`
	BoundProcs    RecordSet `json:"boundprocs,omitempty"`

	VarType    string `json:"vartype,omitempty"`
	Permission string `json:"permission,omitempty"`
	Generic    string `json:"generic,omitempty"`
}

// childField binds one whitelisted child collection to its entity relation.
// The slice fixes the wire order of collections in exported documents.
type childField struct {
	relation entity.Relation
	get      func(*Record) RecordSet
	set      func(*Record, RecordSet)
}

var childFields = []childField{
	{entity.RelPubProcs,
		func(r *Record) RecordSet { return r.PubProcs },
		func(r *Record, s RecordSet) { r.PubProcs = s }},
	{entity.RelPubAbsInts,
		func(r *Record) RecordSet { return r.PubAbsInts },
		func(r *Record, s RecordSet) { r.PubAbsInts = s }},
	{entity.RelPubTypes,
		func(r *Record) RecordSet { return r.PubTypes },
		func(r *Record, s RecordSet) { r.PubTypes = s }},
	{entity.RelPubVars,
		func(r *Record) RecordSet { return r.PubVars },
		func(r *Record, s RecordSet) { r.PubVars = s }},
	{entity.RelFunctions,
		func(r *Record) RecordSet { return r.Functions },
		func(r *Record, s RecordSet) { r.Functions = s }},
	{entity.RelSubroutines,
		func(r *Record) RecordSet { return r.Subroutines },
		func(r *Record, s RecordSet) { r.Subroutines = s }},
	{entity.RelInterfaces,
		func(r *Record) RecordSet { return r.Interfaces },
		func(r *Record, s RecordSet) { r.Interfaces = s }},
	{entity.RelAbsInterfaces,
		func(r *Record) RecordSet { return r.AbsInterfaces },
		func(r *Record, s RecordSet) { r.AbsInterfaces = s }},
	{entity.RelTypes,
		func(r *Record) RecordSet { return r.Types },
		func(r *Record, s RecordSet) { r.Types = s }},
	{entity.RelVariables,
		func(r *Record) RecordSet { return r.Variables },
		func(r *Record, s RecordSet) { r.Variables = s }},
	{entity.RelBoundProcs,
		func(r *Record) RecordSet { return r.BoundProcs },
		func(r *Record, s RecordSet) { r.BoundProcs = s }},
}

// RecordSet holds nested child records. Producers have written two shapes
// for child collections, a sequence of records and a name-to-record mapping;
// both decode here, with mapping entries kept in document order. Null
// entries stand for children the producer chose not to federate and are
// dropped. Encoding always emits the sequence shape.
type RecordSet []*Record

func (rs *RecordSet) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return fmt.Errorf("empty child collection value")
	}
	switch trimmed[0] {
	case 'n': // null
		*rs = nil
		return nil
	case '[':
		var items []*Record
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		var out RecordSet
		for _, item := range items {
			if item != nil {
				out = append(out, item)
			}
		}
		*rs = out
		return nil
	case '{':
		dec := json.NewDecoder(bytes.NewReader(data))
		if _, err := dec.Token(); err != nil { // consume '{'
			return err
		}
		var out RecordSet
		for dec.More() {
			if _, err := dec.Token(); err != nil { // consume the key
				return err
			}
			var rec *Record
			if err := dec.Decode(&rec); err != nil {
				return err
			}
			if rec != nil {
				out = append(out, rec)
			}
		}
		*rs = out
		return nil
	default:
		return fmt.Errorf("child collection must be a sequence or mapping, got %q", trimmed[0])
	}
}

// Extends is the inheritance field of a derived-type record: a bare type
// name when the parent type lives outside the exporting project, or a full
// nested record when the parent is exported alongside.
type Extends struct {
	Name   string
	Record *Record
}

func (e *Extends) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return fmt.Errorf("empty extends value")
	}
	switch trimmed[0] {
	case 'n': // null
		return nil
	case '"':
		return json.Unmarshal(data, &e.Name)
	default:
		return json.Unmarshal(data, &e.Record)
	}
}

func (e *Extends) MarshalJSON() ([]byte, error) {
	if e.Record != nil {
		return json.Marshal(e.Record)
	}
	return json.Marshal(e.Name)
}

// wireBool encodes a flag the way existing producers spell it, with a
// capitalized word rather than a JSON boolean.
func wireBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}

// parseWireBool accepts the flag spellings found in documents in the wild:
// true/yes/on and their single-letter and numeric forms, any case. Anything
// else reads as false.
func parseWireBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "t", "yes", "y", "1", "on":
		return true
	}
	return false
}
