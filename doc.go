// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package cistring provides String, a string value that is
// ASCII-case-insensitive for equality and hashing while preserving the
// original casing of its contents for display and byte-level access.
//
// Folding is applied only to the ASCII letters 'A'-'Z'; every other byte,
// including the bytes of multi-byte UTF-8 sequences, compares verbatim.
// This makes String a good fit for keys whose case should not matter, such
// as HTTP header names and protocol tokens.
package cistring

// BUG(cvieth): Case variants outside ASCII (for example 'Α' and 'α') are
// not folded and therefore compare as distinct. This is deliberate: callers
// rely on the byte-level equality and hash distribution of ASCII-only
// folding.
