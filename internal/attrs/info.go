package attrs

// Info is the parsed attribute set for a single item, variant, or field.
type Info struct {
	Entry entryUnit

	Retype    Slot[string]
	Rename    Slot[string]
	RenameAll Slot[RenameAll]
	Tag       Slot[string]
	Content   Slot[string]

	Skip            skipUnit
	SkipSerializing skipUnit
}

// entryUnit/skipUnit are Slot[struct{}] by another name, kept distinct so
// zero-value Info reads naturally (attrs.Info{} rather than needing a
// constructor).
type entryUnit = Slot[struct{}]
type skipUnit = Slot[struct{}]

func (a Info) IsEntry() bool { return a.Entry.IsSet() }

// IsSkipped is true if either skip or skip_serializing is present; the
// spec treats the two as interchangeable for suppression.
func (a Info) IsSkipped() bool { return a.Skip.IsSet() || a.SkipSerializing.IsSet() }

// RenameAllOrDefault returns the item's own rename_all if set, else the
// default convention (camelCase).
func (a Info) RenameAllOrDefault() RenameAll {
	if v, ok := a.RenameAll.Value(); ok {
		return v
	}
	return DefaultRenameAll
}

// RenameName resolves the emitted name for a field/variant/type: the
// attribute's own rename wins unconditionally; otherwise, if a source
// name is present, the container's rename_all convention (if any) is
// applied to it. A nil renameAll means "no conversion" (used for type
// names, which are never subject to rename_all).
func RenameName(attr Info, renameAll *RenameAll, name string, hasName bool) (string, bool) {
	if rename, ok := attr.Rename.Value(); ok {
		return rename, true
	}
	if !hasName {
		return "", false
	}
	if renameAll != nil {
		return renameAll.Convert(name), true
	}
	return name, true
}
