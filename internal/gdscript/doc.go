// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package gdscript models the class dump written by the Godot GDScript
// language server and converts its JSON form into typed entities.
//
// Validation happens here, at the load boundary: the rest of the tool only
// ever sees fixed-shape values. Keys that may be missing in the dump (a
// parent class, a default value) are carried as Optional rather than as
// empty-string sentinels.
package gdscript
