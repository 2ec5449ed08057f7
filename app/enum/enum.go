// Package enum defines the enumerated types used across the service.
// Exported types are generated by go-pkgz/enum from the lower-case definitions below.
package enum

//go:generate go run github.com/go-pkgz/enum@latest -type theme -lower
type theme int

const (
	themeDark theme = iota
	themeLight
)

//go:generate go run github.com/go-pkgz/enum@latest -type storage -lower
type storage int

const (
	storageCookie storage = iota
	storageDB             // enum:alias=database
)

//go:generate go run github.com/go-pkgz/enum@latest -type dbType -lower
type dbType int

const (
	dbTypeSQLite   dbType = iota // enum:alias=sqlite
	dbTypePostgres               // enum:alias=postgres
)
