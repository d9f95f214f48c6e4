// Package all wires all built-in storage backends into the storage factory.
//
// This package exists purely for side effects: importing it (even as a blank
// import) runs the init functions of each concrete backend, which register
// their factories with the storage package. Importing it makes the following
// storage kinds available at runtime:
//
//   - "sqlite"   (eveapi/internal/storage/sqlite)
//   - "postgres" (eveapi/internal/storage/postgres)
//
// Binaries that want a subset can blank-import individual backends instead.
package all

import (
	_ "eveapi/internal/storage/postgres"
	_ "eveapi/internal/storage/sqlite"
)
