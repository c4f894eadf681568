// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package docgen turns loaded GDScript classes into documentation pages.
//
// Each class becomes one page laid out in a fixed order: title, inheritance
// line, description, then enums, constants, signals, properties and methods.
// Empty sections are left out entirely. Assemble adds the index page and
// rejects any two pages that would land on the same file.
package docgen
