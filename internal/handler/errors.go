package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidSlotIndex      = "Slot index must be a number"
	ErrMsgGenericServerError    = "Something went wrong"
)

// User-facing messages for inventory errors
const (
	ErrMsgInventoryNotFound    = "Inventory not found"
	ErrMsgItemNotFound         = "Item not found"
	ErrMsgIndexOutOfRange      = "Slot index is outside the inventory"
	ErrMsgInvalidDimensions    = "Rows and columns must be positive"
	ErrMsgInvalidAmount        = "Amount is not valid for this slot"
	ErrMsgInvalidItem          = "Item is not valid here"
	ErrMsgInvalidCategory      = "Unknown item category"
	ErrMsgTypeMismatch         = "Slots hold different items"
	ErrMsgDestinationNotEmpty  = "Destination slot is not empty"
	ErrMsgInsufficientQuantity = "Not enough items in the source slot"
)

// Log messages
const (
	LogMsgOperationFailed   = "Inventory operation failed"
	LogMsgInventoryCreated  = "Inventory created"
	LogMsgInventoryDeleted  = "Inventory deleted"
	LogMsgRequestDecodeFail = "Failed to decode request"
	LogMsgInvalidRequest    = "Invalid request"
)

// Success messages
const (
	MsgInventoryDeleted = "Inventory deleted"
)
