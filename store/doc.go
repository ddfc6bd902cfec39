// Package store provides the filesystem-backed image store: raw upload bytes
// written as <identifier>.<extension> under one configured root directory,
// with no side-channel metadata.
//
// Resolution probes the canonical extensions in fixed order instead of
// enumerating the directory, because the root may be a shared temporary area
// with unrelated writers. No durability is promised; a partially written file
// after a crash is an accepted risk of the ephemeral design.
package store
