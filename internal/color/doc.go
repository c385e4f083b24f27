// Package color provides terminal color theming for qactl.
//
// This package provides consistent color theming for the console reports
// produced by the matrix, sessions and check-groups commands. It ensures
// that qactl displays correctly in various terminal environments.
//
// # Theme System
//
// Colors are organized into semantic categories:
//   - Heading: section headings (one per test kind or report section)
//   - Success: positive states (valid, resolved)
//   - Warning: caution states (skipped matrix entries)
//   - Error: failure states (validation errors)
//   - Muted: de-emphasized text (counts, reasons)
//
// # Adaptive Rendering
//
// Styles use adaptive colors so output stays readable on dark and light
// backgrounds; lipgloss downgrades automatically for terminals without
// TrueColor support and honors NO_COLOR.
package color
