package model

// Package model defines the domain types shared by the core and both
// front-ends: stream categories, descriptors and quality maps, selection
// choices, progress events, download tasks and the error taxonomy.
