// Package core defines the data model of the tracker.
//
// This package contains:
//   - Calendar dates (Date) and their canonical YYYY-MM-DD form
//   - Tasks, task status normalization and deadline classification
//   - Projects, which exclusively own an ordered task sequence
//   - Sentinel errors shared by every layer above
//
// core has no knowledge of prompts, rendering or configuration.
package core
