package interchange

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fortdoc-labs/fortdoc/entity"
)

// FileName is the well-known document name at the root of a project's
// published documentation.
const FileName = "modules.json"

// Export writes the project's module collection, each module with its full
// child subtree, to dir/modules.json. Entities that are themselves external
// proxies are left out: an item federated from elsewhere is never
// re-exported under this project's URL space.
func Export(project *entity.Project, dir string) error {
	records := make([]*Record, 0, len(project.Modules))
	for _, mod := range project.Modules {
		if rec := recordFromEntity(mod); rec != nil {
			records = append(records, rec)
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding interchange document: %w", err)
	}
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing interchange document: %w", err)
	}
	return nil
}

// recordFromEntity serializes one native entity and its subtree. External
// proxies serialize to nil so callers drop them from whatever collection
// they sit in.
func recordFromEntity(e *entity.Entity) *Record {
	if e.External {
		return nil
	}
	rec := &Record{
		Name:        e.Name,
		ExternalURL: e.URL(),
		Obj:         e.Kind.Tag(),
		Proctype:    e.Proctype,
		VarType:     e.VarType,
		Permission:  e.Permission,
	}
	if e.Kind == entity.KindBoundProcedure {
		rec.Generic = wireBool(e.Generic)
	}
	if e.Extends != nil {
		switch {
		case e.Extends.Entity != nil && !e.Extends.Entity.External:
			rec.Extends = &Extends{Record: recordFromEntity(e.Extends.Entity)}
		case e.Extends.Entity != nil:
			// A parent type federated from elsewhere degrades to its name.
			rec.Extends = &Extends{Name: e.Extends.Entity.Name}
		default:
			rec.Extends = &Extends{Name: e.Extends.Name}
		}
	}
	for _, field := range childFields {
		kids := e.Children(field.relation)
		if len(kids) == 0 {
			continue
		}
		set := make(RecordSet, 0, len(kids))
		for _, kid := range kids {
			if kidRec := recordFromEntity(kid); kidRec != nil {
				set = append(set, kidRec)
			}
		}
		field.set(rec, set)
	}
	return rec
}
