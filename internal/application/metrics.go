package application

import "expvar"

// Counters published under /api/debug/vars.
var (
	usersRegistered = expvar.NewInt("users_registered")
	loginsSucceeded = expvar.NewInt("logins_succeeded")
	loginsFailed    = expvar.NewInt("logins_failed")
	notesCreated    = expvar.NewInt("notes_created")
	notesUpdated    = expvar.NewInt("notes_updated")
	notesDeleted    = expvar.NewInt("notes_deleted")
	notesForbidden  = expvar.NewInt("notes_forbidden")
)
