package mq

import (
	"context"
	"encoding/json"
	"log"

	"mandi/live"
	"mandi/models"
	"mandi/rdx"
)

const catalogChannel = "catalog-events"

// Emit publishes a catalog event to Redis. Failures are logged, never
// surfaced: the write that triggered the event has already succeeded.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, catalogChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s: %v", eventName, err)
	}
}

// StartCatalogWorker consumes catalog events: it drops the cached shop
// listings so storefront reads see fresh data, and forwards the event
// to the owning vendor's live dashboard room.
func StartCatalogWorker(hub *live.Hub) {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, catalogChannel)
	ch := sub.Channel()

	log.Println("[CatalogWorker] Listening for catalog events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[CatalogWorker] Failed to parse event: %v", err)
			continue
		}

		if err := rdx.RdxDel("shops"); err != nil {
			log.Printf("[CatalogWorker] Cache invalidation error: %v", err)
		}
		if event.VendorId != "" {
			rdx.RdxDel("shop:" + event.VendorId)
			hub.Broadcast(event.VendorId, []byte(msg.Payload))
		}
	}
}
