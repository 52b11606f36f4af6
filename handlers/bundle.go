package handlers

// HandlerBundle aggregates all handler groups for route registration.
type HandlerBundle struct {
	Availability  *AvailabilityHandler
	Catalog       *CatalogHandler
	Pricing       *PricingHandler
	Booking       *BookingHandler
	Photographers *PhotographerHandler
	Storage       *StorageHandler
	Admin         *AdminHandler
}
