package models

// ModelRegistry lists every model handed to GORM auto-migration in
// development. Production schemas are managed by the SQL migrations under
// migrations/.
var ModelRegistry = []interface{}{
	&WaitlistEntry{},
}
