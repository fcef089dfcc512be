package entity

// Walk returns every entity reachable from root through the given child
// relations, depth first with parents before their children. The root itself
// is not included.
func Walk(root *Entity, rels ...Relation) []*Entity {
	var out []*Entity
	for _, rel := range rels {
		for _, child := range root.Children(rel) {
			out = append(out, child)
			out = append(out, Walk(child, rels...)...)
		}
	}
	return out
}
