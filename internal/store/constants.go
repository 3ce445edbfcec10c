package store

const (
	LogMsgInventoryEvicted = "Inventory evicted from store"
)
