// Package interchange exports a project's public entity graph to a
// modules.json document other documentation builds can consume, and imports
// such documents from remote or local external sources as proxy entities.
//
// A document is a JSON sequence of records, one per top-level module, each
// carrying the entity's name, resolved URL, kind tag and nested child
// records. URLs inside an imported document are rewritten against the
// source's base location so proxies link back to the project that documents
// them. Unreachable or invalid sources are skipped with a warning and never
// fail the importing build; every source definition also registers a macro
// so pages can reference the source by name.
package interchange
