package entity

import "fmt"

// Collection names one of the project-level entity lists. Link resolution
// addresses collections through these handles so classifier tables stay
// declarative.
type Collection int

const (
	CollModules Collection = iota
	CollExtModules
	CollTypes
	CollExtTypes
	CollProcedures
	CollExtProcedures
	CollFiles
	CollAbsInterfaces
	CollExtInterfaces
	CollPrograms
	CollBlockData
	CollExtVariables
	CollExtBoundProcs
)

// Project is the root search space for a documentation build: one ordered
// list per top-level entity kind, with external counterparts filled by
// interchange import. All lists preserve insertion order.
type Project struct {
	Modules       []*Entity
	ExtModules    []*Entity
	Types         []*Entity
	ExtTypes      []*Entity
	Procedures    []*Entity
	ExtProcedures []*Entity
	Files         []*Entity
	AbsInterfaces []*Entity
	ExtInterfaces []*Entity
	Programs      []*Entity
	BlockData     []*Entity
	ExtVariables  []*Entity
	ExtBoundProcs []*Entity
}

// NewProject returns an empty project.
func NewProject() *Project {
	return &Project{}
}

// Collection returns the entity list addressed by c.
func (p *Project) Collection(c Collection) []*Entity {
	switch c {
	case CollModules:
		return p.Modules
	case CollExtModules:
		return p.ExtModules
	case CollTypes:
		return p.Types
	case CollExtTypes:
		return p.ExtTypes
	case CollProcedures:
		return p.Procedures
	case CollExtProcedures:
		return p.ExtProcedures
	case CollFiles:
		return p.Files
	case CollAbsInterfaces:
		return p.AbsInterfaces
	case CollExtInterfaces:
		return p.ExtInterfaces
	case CollPrograms:
		return p.Programs
	case CollBlockData:
		return p.BlockData
	case CollExtVariables:
		return p.ExtVariables
	case CollExtBoundProcs:
		return p.ExtBoundProcs
	}
	return nil
}

// Add appends a native entity to the project collection for its kind.
// Variables and bound procedures never appear at top level; interfaces and
// abstract interfaces share the abstract-interface list, functions and
// subroutines the procedure list.
func (p *Project) Add(e *Entity) error {
	switch e.Kind {
	case KindModule:
		p.Modules = append(p.Modules, e)
	case KindType:
		p.Types = append(p.Types, e)
	case KindFunction, KindSubroutine:
		p.Procedures = append(p.Procedures, e)
	case KindInterface, KindAbsInterface:
		p.AbsInterfaces = append(p.AbsInterfaces, e)
	case KindSourceFile:
		p.Files = append(p.Files, e)
	case KindProgram:
		p.Programs = append(p.Programs, e)
	case KindBlockData:
		p.BlockData = append(p.BlockData, e)
	default:
		return fmt.Errorf("no project collection for %s entities", e.Kind)
	}
	return nil
}

// AddExternal appends an imported proxy to the external collection for its
// kind. Proxies are registered before their children so a failed import
// never leaves reachable orphans.
func (p *Project) AddExternal(e *Entity) error {
	switch e.Kind {
	case KindModule:
		p.ExtModules = append(p.ExtModules, e)
	case KindType:
		p.ExtTypes = append(p.ExtTypes, e)
	case KindFunction, KindSubroutine:
		p.ExtProcedures = append(p.ExtProcedures, e)
	case KindInterface, KindAbsInterface:
		p.ExtInterfaces = append(p.ExtInterfaces, e)
	case KindVariable:
		p.ExtVariables = append(p.ExtVariables, e)
	case KindBoundProcedure:
		p.ExtBoundProcs = append(p.ExtBoundProcs, e)
	default:
		return fmt.Errorf("no external collection for %s entities", e.Kind)
	}
	return nil
}
