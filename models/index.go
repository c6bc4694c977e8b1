package models

// Index is the catalog-event payload published on Redis and forwarded
// to vendor dashboard subscribers.
type Index struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityId   string `json:"entity_id"`
	VendorId   string `json:"vendor_id"`
}
