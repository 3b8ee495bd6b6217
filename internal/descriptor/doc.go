// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package descriptor implements the compact textual encoding of structural
// types used throughout typecodec, and the generic machinery for deriving
// behaviour from it.
//
// # Core Concepts
//
//   - Type: a sealed, immutable tree with exactly seven variants (Scalar, List,
//     Optional, Dictionary, Tuple, Record, Union).
//
//   - Descriptor string: the canonical serialisation of a Type. Scalars are a
//     single tag character, containers prefix their children with a tag and,
//     where needed, a decimal count, e.g. `o2a$ib$s` is a record with an
//     integer field `a` and a string field `b`.
//
//   - Interpreter: one handler per constructor. Decode threads a descriptor
//     string through an Interpreter, Fold threads a Type tree through one. The
//     Namer, Exampler, encoder and builder in this package are interpreters, and
//     the literal package supplies a parser-table interpreter.
//
// Decoding is fail-fast: a malformed descriptor is a programming or
// configuration error and yields a *MalformedDescriptorError with no partial
// result.
package descriptor
