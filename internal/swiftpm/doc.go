// Package swiftpm runs SwiftPM actions (build, test) through the compiler
// driver of an assembled toolchain.
package swiftpm
