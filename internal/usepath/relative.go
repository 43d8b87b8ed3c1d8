package usepath

// Warnf logs a single formatted warning line; callers pass a zap sugared
// logger's Warnf (or nil to stay silent, mainly in tests).
type Warnf func(format string, args ...interface{})

// RelativeFrom computes the source-style path that, appended to anchor's
// parent directory, reaches p. anchor is the file doing the importing.
//
// Algorithm (spec.md §4.A):
//  1. If p is absolute, drop its leading RootDir. Otherwise resolve any
//     leading ParentDir components against anchor's parent: if there are
//     more of them than anchor's parent is deep, this is an escaping
//     import — warn and return p unchanged.
//  2. Find the longest shared prefix of anchor's parent and the resolved
//     import path.
//  3. Emit one ParentDir per remaining anchor-parent component, then the
//     unshared suffix of the import path.
func (p RsPath) RelativeFrom(anchor FsPath, warn Warnf) RsPath {
	rel, _ := p.RelativeFromChecked(anchor, warn)
	return rel
}

// RelativeFromChecked is RelativeFrom plus an ok flag: false means p
// escapes above anchor's root and was returned unchanged, letting a
// caller (e.g. the export driver's import builder) skip emitting an
// import for a path it couldn't safely relativize.
func (p RsPath) RelativeFromChecked(anchor FsPath, warn Warnf) (RsPath, bool) {
	location := cloneComponents(anchor.Parent().Components)

	importPath, escaped := canonicalizeFromRoot(p.Components, location, warn)
	if escaped {
		return p, false
	}

	shared := 0
	for shared < len(location) && shared < len(importPath) && location[shared] == importPath[shared] {
		shared++
	}

	needGoUp := len(location) - shared
	result := make([]Component, 0, needGoUp+len(importPath)-shared)
	for i := 0; i < needGoUp; i++ {
		result = append(result, Component{Kind: ParentDir})
	}
	result = append(result, importPath[shared:]...)

	out := p
	out.Components = result
	return out, true
}

// CanonicalFS resolves p — absolute, ParentDir-relative to anchor's
// containing directory, or already rooted at the crate root — into the filesystem-style path of the module that
// declares it, rooted at the crate root. Used by the export driver to
// group cross-file dependencies by their declaring file before looking
// them up in the scanned item index.
func (p RsPath) CanonicalFS(anchor FsPath, warn Warnf) FsPath {
	location := cloneComponents(anchor.Parent().Components)
	resolved, escaped := canonicalizeFromRoot(p.Components, location, warn)
	if escaped {
		resolved = cloneComponents(p.Components)
	}
	return FsPath{Components: resolved}
}

// canonicalizeFromRoot resolves comps (a path as written at a reference
// site) against location (the referencing file's containing directory,
// itself expressed relative to the crate root) into a component
// sequence rooted at the crate root. Absolute paths drop their leading
// RootDir; relative paths walk up out of location once per leading
// ParentDir component; a path that starts with neither RootDir nor
// ParentDir (as the extractor builds for same-file references) is taken
// as already rooted at the crate root and returned as is. escaped is
// true when there are more leading
// ParentDir components than location is deep, in which case comps is
// returned unchanged and warn (if non-nil) fires.
func canonicalizeFromRoot(comps, location []Component, warn Warnf) (resolved []Component, escaped bool) {
	if len(comps) > 0 && comps[0].Kind == RootDir {
		return cloneComponents(comps[1:]), false
	}

	parentCount := 0
	for _, c := range comps {
		if c.Kind == ParentDir {
			parentCount++
		} else {
			break
		}
	}
	if parentCount > len(location) {
		if warn != nil {
			warn("escaping import detected: %s at %s; leaving unresolved", joinComponents(comps), joinComponents(location))
		}
		return cloneComponents(comps), true
	}
	if parentCount > 0 {
		out := cloneComponents(location[:len(location)-parentCount])
		out = append(out, comps[parentCount:]...)
		return out, false
	}
	return cloneComponents(comps), false
}
