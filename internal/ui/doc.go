// Package ui contains the Fyne desktop front-end. It collects input files,
// edits encoding options, drives the conversion service and renders its log
// and per-file progress. All UI strings are localized via Localization.
package ui
