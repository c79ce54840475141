// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package markdown turns Notion block trees into Markdown and Markdown into
// HTML for previews.
//
// The Notion side works on [github.com/jomei/notionapi] block values that the
// adapter layer has already fetched, so rendering never touches the network.
package markdown
