package repository

// DataStore is the full set of collections owned by the store
type DataStore interface {
	ProductRepository
	PriceVersionRepository
	SeasonRepository
	DepartureRepository
}
