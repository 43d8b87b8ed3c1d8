package typeinfo

// primitiveNames is the fixed Rust-primitive-to-TypeInfo leaf mapping,
// ported verbatim from type_info.rs's FromStr impl.
var primitiveNames = map[string]Info{
	"bool": InfoBool,

	"u8":  InfoNumber,
	"u16": InfoNumber,
	"u32": InfoNumber,
	"i8":  InfoNumber,
	"i16": InfoNumber,
	"i32": InfoNumber,
	"f32": InfoNumber,
	"f64": InfoNumber,

	"u64":   InfoBigInt,
	"i64":   InfoBigInt,
	"usize": InfoBigInt,
	"isize": InfoBigInt,

	"String": InfoString,
	"char":   InfoString,
}

// FromPrimitiveName matches a head identifier against the fixed
// primitive table.
func FromPrimitiveName(name string) (Info, bool) {
	info, ok := primitiveNames[name]
	return info, ok
}
