// Package loader registers HTTP features and mounts the enabled ones on the app.
//
// A feature owns a group of routes and the service behind them:
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The server registers two: "records", which serves every schema under
// /records/:baseName, and "integrity", which checks the bucket layout, the record
// table and the stored records. LoadAll stops at the first feature that fails to load.
package loader
