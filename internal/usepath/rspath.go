package usepath

// RsPath is a source-style module path: the component sequence as it
// would appear in a `use` statement, plus the metadata a resolved `use`
// clause carries (the imported name, its original name if renamed, and
// whether the item it names lives in the same file as the reference).
type RsPath struct {
	Components []Component
	Name       string
	ActualName string
	HasRename  bool
	LocalUse   bool
}

// Extended appends one raw identifier, lifting "super"/"crate" textually.
func (p RsPath) Extended(ident string) RsPath {
	next := p
	next.Components = append(cloneComponents(p.Components), LiftComponent(ident))
	return next
}

func (p RsPath) WithName(name string) RsPath {
	p.Name = name
	return p
}

func (p RsPath) WithActualName(name string) RsPath {
	p.ActualName = name
	p.HasRename = true
	return p
}

func (p RsPath) WithLocalUse(local bool) RsPath {
	p.LocalUse = local
	return p
}

// ResolvedName is the name other items should match this path by: the
// original name if the import renamed it, otherwise the imported name.
func (p RsPath) ResolvedName() string {
	if p.HasRename {
		return p.ActualName
	}
	return p.Name
}

func (p RsPath) IsAbsolute() bool {
	return len(p.Components) > 0 && p.Components[0].Kind == RootDir
}

func (p RsPath) IsRelative() bool {
	if len(p.Components) == 0 {
		return false
	}
	first := p.Components[0]
	return first.Kind == ParentDir || first.Kind == Normal
}

func (p RsPath) StartsWithParent() bool {
	return len(p.Components) > 0 && p.Components[0].Kind == ParentDir
}

// ToFS reinterprets the same component sequence as a filesystem-style
// path (directories plus a trailing filename stem).
func (p RsPath) ToFS() FsPath {
	return FsPath{Components: cloneComponents(p.Components)}
}

func (p RsPath) Equal(o RsPath) bool {
	return equalComponents(p.Components, o.Components) &&
		p.Name == o.Name && p.ActualName == o.ActualName &&
		p.HasRename == o.HasRename && p.LocalUse == o.LocalUse
}

func (p RsPath) String() string {
	return joinComponents(p.Components)
}

// ImportSpecifier renders an already-relativized path (the result of
// RelativeFrom) as a module specifier string: "../a/b" when it climbs
// out of the importing file's directory, "./a/b" otherwise. Module
// specifiers never carry a file extension.
func (p RsPath) ImportSpecifier() string {
	if len(p.Components) == 0 {
		return "."
	}
	if p.Components[0].Kind == ParentDir {
		return joinComponents(p.Components)
	}
	return "./" + joinComponents(p.Components)
}
