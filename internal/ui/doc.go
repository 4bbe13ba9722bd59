// Package ui contains the Fyne desktop window: a link entry, format and
// quality selectors filled from a fetch, a destination picker and a progress
// bar fed by the same progress channel the web service uses.
// All UI strings are localized via Localization.
package ui
