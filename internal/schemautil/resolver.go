package schemautil

// Resolver inlines local $ref nodes in a request-body schema so each
// media type ends up with a fully self-contained schema. The registry
// maps reference strings (e.g. "#/components/schemas/Pet") to their
// schema definitions and is populated once at validator construction;
// references not present in the registry are left as-is for the
// validation engine to resolve or reject at compile time.
type Resolver struct {
	defs map[string]map[string]any

	// active tracks references currently being inlined so circular
	// reference chains terminate. A cyclic $ref is left in place for
	// the validation engine to handle at compile time.
	active map[string]bool
}

// NewResolver creates a Resolver over the given reference registry.
// The registry is used read-only.
func NewResolver(defs map[string]map[string]any) *Resolver {
	if defs == nil {
		defs = map[string]map[string]any{}
	}
	return &Resolver{defs: defs, active: map[string]bool{}}
}

// Lookup returns the registered definition for ref, if any.
func (r *Resolver) Lookup(ref string) (map[string]any, bool) {
	def, ok := r.defs[ref]
	return def, ok
}

// Resolve walks schema and replaces every registered local $ref with a
// normalized deep copy of its target. The schema is mutated in place
// where possible and the (possibly replaced) node is returned; callers
// must use the return value since a $ref leaf resolves to a new node.
//
// Dispatch is by node shape, first match wins; the shapes are mutually
// exclusive per node so no node is processed twice.
func (r *Resolver) Resolve(schema map[string]any) map[string]any {
	if schema == nil {
		return nil
	}

	if props, ok := schema["properties"].(map[string]any); ok {
		StripReadOnlyRequired(schema)
		for name, raw := range props {
			if sub, ok := raw.(map[string]any); ok {
				props[name] = r.Resolve(sub)
			}
		}
		return schema
	}

	if ref, ok := schema["$ref"].(string); ok {
		target, found := r.Lookup(ref)
		if !found || r.active[ref] {
			return schema
		}
		r.active[ref] = true
		inlined := Normalize(target)
		StripReadOnlyRequired(inlined)
		resolved := r.Resolve(inlined)
		delete(r.active, ref)
		return resolved
	}

	if items, ok := schema["items"].(map[string]any); ok {
		if _, hasRef := items["$ref"]; hasRef {
			schema["items"] = r.Resolve(items)
		}
		return schema
	}

	for _, keyword := range []string{"allOf", "oneOf", "anyOf"} {
		branches, ok := schema[keyword].([]any)
		if !ok {
			continue
		}
		for i, raw := range branches {
			if sub, ok := raw.(map[string]any); ok {
				StripReadOnlyRequired(sub)
				branches[i] = r.Resolve(sub)
			}
		}
		return schema
	}

	return schema
}
