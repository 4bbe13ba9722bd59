package catalog

// Package catalog turns the engine's raw format list into the three-category
// quality map and renders it as ordered listings for the front-ends.
