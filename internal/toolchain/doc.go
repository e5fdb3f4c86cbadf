// Package toolchain assembles a fake Swift toolchain: a usr/bin and usr/lib
// tree under <build-path>/fake_toolchain that is stitched together from
// separate build outputs. Layout computes the paths, Plan lists the
// artifacts to place, and Builder resets the tree and places them.
//
// The compiler binary is the one artifact that must be a real file: it
// resolves its resource directory relative to its own real path. Every
// other artifact is a symlink back into its build output.
package toolchain
