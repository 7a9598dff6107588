// Package app provides the orchestration layer for depot.
//
// # Overview
//
// This package wires configuration, logging, the program catalog, user
// preferences and the UI together. It is the composition root: the catalog
// table and the navigator are chosen here and passed into the UI, which
// never reaches for global state.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()     Read ~/.config/depot/config.toml
//	       ├─────> logging.New()     JSON log file (the TUI owns the terminal)
//	       ├─────> Compose()
//	       │        ├─> catalog.Load()   Built-in table or TOML catalog
//	       │        ├─> prefs.Load()     Theme and detail pane
//	       │        └─> opener.New()     Or a recorder for --dry-run
//	       └─────> ui.Run()          Blocks until quit or cancel
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Config or catalog file present but unreadable or malformed
//   - Unknown log level or unwritable log file
//
// Everything else degrades: a missing config or catalog uses defaults, a
// broken prefs file uses default preferences, and a failed download is
// reported in the footer and the log.
package app
