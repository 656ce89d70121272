// Code generated by ent, DO NOT EDIT.

package runtime

// The schema-stitching logic is generated in github.com/studymap/studymap/ent/runtime.go

const (
	Version = "v0.14.0"                                         // Version of ent codegen.
	Sum     = "h1:EO3Z9aZ5bXJatJeGqu/EVdnNr6K4mRq3rWe5owt0MC4=" // Sum of ent codegen.
)
