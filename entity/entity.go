package entity

import (
	"fmt"
	"strings"
)

// Extends records a derived type's parent type: the bare name when the
// parent is not part of any documented project, plus a reference to the
// entity when it is.
type Extends struct {
	Name   string
	Entity *Entity
}

// Entity is one documentable item. Native entities compute their URLs from
// their kind and position in the tree; external proxies built by interchange
// import carry a pre-resolved URL instead. The child collections an entity
// may hold are fixed by its kind.
type Entity struct {
	Name        string
	Kind        Kind
	Parent      *Entity // enclosing entity, nil at top level
	External    bool    // proxy imported from an external project
	ExternalURL string  // resolved documentation URL of a proxy

	Proctype   string   // "Function", "Subroutine" or "Interface" where applicable
	Extends    *Extends // derived types only
	VarType    string   // variables: declared type
	Permission string   // visibility, e.g. "public"
	Generic    bool     // bound procedures: generic binding

	children map[Relation][]*Entity
}

// New returns a native entity of the given kind. Kinds with a procedure
// classification get their Proctype filled in.
func New(kind Kind, name string) *Entity {
	return &Entity{
		Name:     name,
		Kind:     kind,
		Proctype: kind.defaultProctype(),
	}
}

// NewExternal returns a proxy entity standing in for an item documented by
// another project, reachable at url.
func NewExternal(kind Kind, name, url string) *Entity {
	e := New(kind, name)
	e.External = true
	e.ExternalURL = url
	return e
}

// Owns reports whether entities of this kind hold a child collection for the
// given relation.
func (e *Entity) Owns(rel Relation) bool {
	for _, r := range kindRelations[e.Kind] {
		if r == rel {
			return true
		}
	}
	return false
}

// Children returns the child collection for rel in insertion order. The
// result is nil when the collection is empty or the kind does not own it.
func (e *Entity) Children(rel Relation) []*Entity {
	return e.children[rel]
}

// Constructor returns the structure constructor of a derived type, or nil.
func (e *Entity) Constructor() *Entity {
	if kids := e.children[RelConstructor]; len(kids) > 0 {
		return kids[0]
	}
	return nil
}

// AddChild appends child to the rel collection and records e as its parent.
// It fails when e's kind does not own rel, and a derived type accepts at
// most one constructor.
func (e *Entity) AddChild(rel Relation, child *Entity) error {
	if !e.Owns(rel) {
		return fmt.Errorf("%s %q cannot contain %s", e.Kind, e.Name, rel)
	}
	if rel == RelConstructor && len(e.children[rel]) > 0 {
		return fmt.Errorf("%s %q already has a constructor", e.Kind, e.Name)
	}
	if e.children == nil {
		e.children = make(map[Relation][]*Entity)
	}
	child.Parent = e
	e.children[rel] = append(e.children[rel], child)
	return nil
}

// Anchor returns the fragment identifier addressing this entity on a page,
// formed from the kind tag and the lowercased name.
func (e *Entity) Anchor() string {
	return e.Kind.Tag() + "-" + strings.ToLower(e.Name)
}

// URL returns the address of this entity's documentation. External proxies
// return their resolved URL verbatim. Native page-owning kinds address their
// own page relative to a sibling page directory; the page-less kinds address
// their parent's page at this entity's anchor, or just the anchor when
// orphaned.
func (e *Entity) URL() string {
	if e.External {
		return e.ExternalURL
	}
	if e.Kind.hasPage() {
		return "../" + e.Kind.pageDir() + "/" + strings.ToLower(e.Name) + ".html"
	}
	if e.Parent != nil {
		return e.Parent.URL() + "#" + e.Anchor()
	}
	return "#" + e.Anchor()
}

// FindByName returns the first entity in list whose name matches
// case-insensitively, or nil when none does.
func FindByName(list []*Entity, name string) *Entity {
	for _, e := range list {
		if strings.EqualFold(e.Name, name) {
			return e
		}
	}
	return nil
}
