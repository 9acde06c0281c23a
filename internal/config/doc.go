// Package config defines the format-agnostic model of scene text: a Body of
// attributes and nested blocks whose attribute values are unevaluated
// expressions.
//
// Two front-ends produce it. ParseHCL reads native HCL syntax. ParseYAML
// reads YAML where mapping keys name attributes or blocks ("type label")
// and scalar values are HCL expressions; quoted scalars are string
// templates. Parse picks one by file extension.
//
// The model is the single input to scene decoding, so both formats decode
// to identical scenes.
package config
