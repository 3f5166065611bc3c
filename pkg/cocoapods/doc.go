// Package cocoapods enumerates the resolved pods of a CocoaPods project.
//
// A Sandbox reads the project's lockfile, locates each pod's podspec JSON
// (the sandbox's "Local Podspecs" copy for externally sourced pods, a spec
// repo checkout otherwise), expands its source globs and reports one
// source.Target per lockfile entry:
//
//	sb := cocoapods.NewSandbox("/path/to/App", nil)
//	records, err := source.Load("", sb)
//
// Only files are read; nothing in the project is modified and no network
// access takes place.
package cocoapods
