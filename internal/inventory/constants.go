package inventory

// ==================== Log Messages ====================

const (
	LogMsgUnknownItem       = "Item not in catalog, using default metadata"
	LogMsgNoCatalog         = "No item catalog configured, using default metadata"
	LogMsgInvalidMaxStack   = "Catalog returned non-positive max stack, using default"
	LogMsgSwapRejected      = "Cannot swap slots with incompatible item types"
	LogMsgCombineMismatch   = "Cannot combine stacks of different types"
	LogMsgCombineRejected   = "Destination slot restriction rejects combined item"
	LogMsgTransferRejected  = "Destination slot restriction rejects transferred item"
	LogMsgTransferNotEmpty  = "Cannot transfer to non-empty slot"
	LogMsgDepositIncomplete = "Inventory full, deposit left items over"
)
