// Package platform provides the host platform context and the filesystem
// primitives the toolchain builder is made of: forced symlinks and hard
// links that replace whatever already sits at the destination, file copies
// that keep metadata, and idempotent directory creation.
package platform
