// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session models the two-step convert-then-upload workflow shared by
// the web form and the terminal client.
//
// A [Session] holds the Notion and GitHub inputs, the converted Markdown and
// the current [State]. Remote calls are not made here: callers start a step
// with BeginConvert or BeginUpload, perform the call however suits them
// (synchronously in an HTTP handler, as a bubbletea command in the TUI) and
// report the outcome with the matching Complete or Fail method.
//
//	idle ──BeginConvert──▶ converting ──CompleteConvert──▶ converted
//	  ▲                        │                              │ ▲
//	  └──────FailConvert───────┘                   BeginUpload│ │FailUpload
//	                                                          ▼ │
//	                               uploaded ◀──CompleteUpload── uploading
//
// A new conversion may start from converted or uploaded. A Session is not
// safe for concurrent use.
package session
