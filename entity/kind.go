package entity

// Kind identifies what sort of documentable item an Entity is.
type Kind int

const (
	KindModule Kind = iota
	KindType
	KindFunction
	KindSubroutine
	KindInterface
	KindAbsInterface
	KindVariable
	KindBoundProcedure
	KindProgram
	KindSourceFile
	KindBlockData
)

var kindNames = map[Kind]string{
	KindModule:         "module",
	KindType:           "derived type",
	KindFunction:       "function",
	KindSubroutine:     "subroutine",
	KindInterface:      "interface",
	KindAbsInterface:   "abstract interface",
	KindVariable:       "variable",
	KindBoundProcedure: "bound procedure",
	KindProgram:        "program",
	KindSourceFile:     "source file",
	KindBlockData:      "block data",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Tag returns the short identifier used in anchors and interchange
// documents. Functions and subroutines share the "proc" tag; their Proctype
// field tells them apart.
func (k Kind) Tag() string {
	switch k {
	case KindModule:
		return "module"
	case KindType:
		return "type"
	case KindFunction, KindSubroutine:
		return "proc"
	case KindInterface, KindAbsInterface:
		return "interface"
	case KindVariable:
		return "variable"
	case KindBoundProcedure:
		return "boundprocedure"
	case KindProgram:
		return "program"
	case KindSourceFile:
		return "sourcefile"
	case KindBlockData:
		return "blockdata"
	}
	return ""
}

// defaultProctype is the Proctype value assigned to freshly built native
// entities of this kind, or "" for kinds that carry none.
func (k Kind) defaultProctype() string {
	switch k {
	case KindFunction:
		return "Function"
	case KindSubroutine:
		return "Subroutine"
	case KindInterface, KindAbsInterface:
		return "Interface"
	}
	return ""
}

// hasPage reports whether native entities of this kind own a documentation
// page of their own. The remaining kinds are rendered on their parent's page
// and addressed by anchor.
func (k Kind) hasPage() bool {
	switch k {
	case KindVariable, KindBoundProcedure:
		return false
	}
	return true
}

// pageDir is the output subdirectory holding pages for this kind.
func (k Kind) pageDir() string {
	switch k {
	case KindFunction, KindSubroutine:
		return "proc"
	case KindInterface, KindAbsInterface:
		return "interface"
	}
	return k.Tag()
}

// Relation names one child collection an entity may own. Which relations a
// given entity owns is fixed by its kind; see Owns.
type Relation int

const (
	RelVariables Relation = iota
	RelTypes
	RelConstructor
	RelInterfaces
	RelAbsInterfaces
	RelSubroutines
	RelFunctions
	RelFinalProcs
	RelBoundProcs
	RelModProcs
	RelCommon
	RelPubProcs
	RelPubAbsInts
	RelPubTypes
	RelPubVars
)

var relationNames = map[Relation]string{
	RelVariables:     "variables",
	RelTypes:         "types",
	RelConstructor:   "constructor",
	RelInterfaces:    "interfaces",
	RelAbsInterfaces: "absinterfaces",
	RelSubroutines:   "subroutines",
	RelFunctions:     "functions",
	RelFinalProcs:    "finalprocs",
	RelBoundProcs:    "boundprocs",
	RelModProcs:      "modprocs",
	RelCommon:        "common",
	RelPubProcs:      "pub_procs",
	RelPubAbsInts:    "pub_absints",
	RelPubTypes:      "pub_types",
	RelPubVars:       "pub_vars",
}

func (r Relation) String() string {
	if name, ok := relationNames[r]; ok {
		return name
	}
	return "unknown"
}

// kindRelations fixes, per kind, the child collections an entity owns. The
// table is the single source of truth for containment: Owns, AddChild and
// the sub-entity search in link resolution all consult it.
var kindRelations = map[Kind][]Relation{
	KindModule: {
		RelVariables, RelTypes, RelInterfaces, RelAbsInterfaces,
		RelSubroutines, RelFunctions, RelModProcs, RelCommon,
		RelPubProcs, RelPubAbsInts, RelPubTypes, RelPubVars,
	},
	KindType: {
		RelVariables, RelBoundProcs, RelConstructor, RelFinalProcs,
	},
	KindFunction: {
		RelVariables, RelTypes, RelInterfaces, RelAbsInterfaces,
		RelSubroutines, RelFunctions, RelCommon,
	},
	KindSubroutine: {
		RelVariables, RelTypes, RelInterfaces, RelAbsInterfaces,
		RelSubroutines, RelFunctions, RelCommon,
	},
	KindInterface: {
		RelSubroutines, RelFunctions, RelModProcs,
	},
	KindAbsInterface: {
		RelSubroutines, RelFunctions, RelModProcs,
	},
	KindVariable:       nil,
	KindBoundProcedure: nil,
	KindProgram: {
		RelVariables, RelTypes, RelInterfaces, RelAbsInterfaces,
		RelSubroutines, RelFunctions, RelCommon,
	},
	KindSourceFile: nil,
	KindBlockData: {
		RelVariables, RelCommon,
	},
}
