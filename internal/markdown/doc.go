// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package markdown assembles markdown text from plain data.
//
// It is deliberately small: headings, paragraphs, pipe tables, bulleted
// lists, fenced code and links, joined by blank lines in the order they were
// added. It also owns the mapping from document titles to file names.
package markdown
