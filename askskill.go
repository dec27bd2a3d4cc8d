// Package askskill provides a conversational agent that discovers developer
// documentation sites, verifies they expose public developer docs, drives the
// site's embedded "Ask AI" assistant with a user query, and persists the
// cleaned answer as a reusable skill file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, gosseract/, sqlite/);
// core logic lives in process packages (search/, analyze/, agent/).
package askskill
