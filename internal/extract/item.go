// Package extract parses one source file into its sequence of
// top-level record/sum type descriptors, plus the use table and
// local-name set those descriptors were resolved against.
package extract

import (
	"github.com/oakmoss/tsexport/internal/attrs"
	"github.com/oakmoss/tsexport/internal/typeinfo"
)

// Field is one record/variant field. Name is nil for a tuple-style
// field, since Rust tuple fields have no identifier.
type Field struct {
	Name *string
	Type typeinfo.Info
	Attr attrs.Info
}

func (f Field) HasName() bool { return f.Name != nil }

// Item is either a StructItem or an EnumItem.
type Item interface {
	ItemName() string
}

type StructItem struct {
	Name   string
	Attr   attrs.Info
	Fields []Field
}

func (s *StructItem) ItemName() string { return s.Name }

// IsUnit, IsTuple, IsNormal classify the struct's field shape, matching
// is_unit_struct/is_tuple_struct/is_normal_struct in struct_info.rs:
// shape is read off the first field only, since Rust disallows mixing
// named and positional fields within one struct.
func (s *StructItem) IsUnit() bool { return len(s.Fields) == 0 }

func (s *StructItem) IsTuple() bool {
	return !s.IsUnit() && !s.Fields[0].HasName()
}

func (s *StructItem) IsNormal() bool {
	return !s.IsUnit() && s.Fields[0].HasName()
}

type Variant struct {
	Name   string
	Attr   attrs.Info
	Fields []Field
}

// IsUnit also treats a single skipped field as unit, per
// is_unit_variant in enum_info.rs.
func (v Variant) IsUnit() bool {
	if len(v.Fields) == 0 {
		return true
	}
	return len(v.Fields) == 1 && v.Fields[0].Attr.IsSkipped()
}

func (v Variant) IsTuple() bool {
	return !v.IsUnit() && len(v.Fields) > 0 && !v.Fields[0].HasName()
}

func (v Variant) IsNormal() bool {
	return !v.IsUnit() && len(v.Fields) > 0 && v.Fields[0].HasName()
}

type EnumItem struct {
	Name     string
	Attr     attrs.Info
	Variants []Variant
}

func (e *EnumItem) ItemName() string { return e.Name }

// ParseError wraps a field/attribute-level failure so the driver can
// still match the failing item by name in a later wave.
type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string { return e.Name + ": " + e.Err.Error() }
func (e *ParseError) Unwrap() error { return e.Err }

// ResultItem is one entry of a file's extracted item sequence: either a
// parsed Item or a ParseError, plus the processed flag the export
// driver's wave loop flips once it has emitted the item.
type ResultItem struct {
	Item      Item
	Err       *ParseError
	Processed bool
}

// Name returns the item's name regardless of whether extraction
// succeeded, so the driver can match a later wave's dependency by name
// even against a failed entry.
func (r *ResultItem) Name() string {
	if r.Err != nil {
		return r.Err.Name
	}
	return r.Item.ItemName()
}
