package core

//go:generate mockgen -source=catalog.go -destination=../mock/catalog.go -package=mock

// Catalog provides access to the application definitions available for
// installation. The storage format is an implementation detail of the catalog.
type Catalog interface {
	GetApplication(id string) (ApplicationDefinition, error)
	GetAll() []ApplicationDefinition
}
