package driver

import "errors"

// ErrInvalidProjectRoot means the input root is missing its manifest
// file or source directory.
var ErrInvalidProjectRoot = errors.New("invalid project root: missing Cargo.toml or src directory")

// ErrAmbiguousPackage means the manifest probe reported more than one
// workspace package and config didn't name one.
var ErrAmbiguousPackage = errors.New("ambiguous package: specify package_name in config")

// ErrUnknownPackage means config named a package_name the manifest
// probe didn't report.
var ErrUnknownPackage = errors.New("unknown package_name")
