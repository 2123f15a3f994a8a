// Package domain contains the core data types of the lesson pipeline:
// lessons, slides and quiz questions, together with the structural
// invariants a lesson must satisfy after deserialization.
//
// Types here are plain data with validation methods and have no
// dependencies on transport, storage or external providers.
package domain
