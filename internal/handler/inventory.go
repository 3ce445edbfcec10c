package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/stackgrid/internal/domain"
	"github.com/osse101/stackgrid/internal/inventory"
	"github.com/osse101/stackgrid/internal/logger"
)

type CreateInventoryRequest struct {
	Rows int `json:"rows" validate:"min=0,max=64"`
	Cols int `json:"cols" validate:"min=0,max=64"`
}

// SlotView is a slot together with its position in the grid
type SlotView struct {
	Index int `json:"index"`
	Row   int `json:"row"`
	Col   int `json:"col"`
	inventory.Slot
}

// InventoryResponse describes a whole inventory
type InventoryResponse struct {
	ID    string     `json:"id"`
	Rows  int        `json:"rows"`
	Cols  int        `json:"cols"`
	Total int        `json:"total"`
	Slots []SlotView `json:"slots"`
}

func newInventoryResponse(id string, inv *inventory.Inventory) InventoryResponse {
	slots := inv.Slots()
	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotView{Index: i, Row: i / inv.Cols(), Col: i % inv.Cols(), Slot: s}
	}
	return InventoryResponse{
		ID:    id,
		Rows:  inv.Rows(),
		Cols:  inv.Cols(),
		Total: inv.Total(),
		Slots: views,
	}
}

// HandleCreateInventory registers a new empty inventory. Zero dimensions
// fall back to the configured defaults.
// @Summary Create inventory
// @Description Create an empty grid inventory
// @Tags inventories
// @Accept json
// @Produce json
// @Param request body CreateInventoryRequest true "Grid dimensions"
// @Success 201 {object} InventoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventories [post]
func (h *Handlers) HandleCreateInventory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateInventoryRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create inventory"); err != nil {
			return
		}
		if req.Rows == 0 {
			req.Rows = h.defaultRows
		}
		if req.Cols == 0 {
			req.Cols = h.defaultCols
		}

		entry, err := h.registry.Create(req.Rows, req.Cols)
		if err != nil {
			respondServiceError(w, r, "create", err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgInventoryCreated,
			"inventory_id", entry.ID, "rows", req.Rows, "cols", req.Cols)
		respondJSON(w, http.StatusCreated, newInventoryResponse(entry.ID, entry.Inventory))
	}
}

// HandleGetInventory returns every slot of an inventory
// @Summary Get inventory
// @Description Return every slot of an inventory
// @Tags inventories
// @Produce json
// @Param id path string true "Inventory ID"
// @Success 200 {object} InventoryResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventories/{id} [get]
func (h *Handlers) HandleGetInventory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var resp InventoryResponse
		err := h.registry.WithInventory(id, func(inv *inventory.Inventory) error {
			resp = newInventoryResponse(id, inv)
			return nil
		})
		if err != nil {
			respondServiceError(w, r, "get", err)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}

// HandleDeleteInventory drops an inventory from the registry
// @Summary Delete inventory
// @Description Drop an inventory from the registry
// @Tags inventories
// @Produce json
// @Param id path string true "Inventory ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventories/{id} [delete]
func (h *Handlers) HandleDeleteInventory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if !h.registry.Delete(id) {
			respondServiceError(w, r, "delete", domain.ErrInventoryNotFound)
			return
		}
		logger.FromContext(r.Context()).Info(LogMsgInventoryDeleted, "inventory_id", id)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgInventoryDeleted})
	}
}

type SetRestrictionRequest struct {
	Category string `json:"category" validate:"category"`
}

// HandleSetRestriction changes which category a slot position accepts
// @Summary Set slot restriction
// @Description Change which item category a slot accepts
// @Tags inventories
// @Accept json
// @Produce json
// @Param id path string true "Inventory ID"
// @Param index path int true "Slot index"
// @Param request body SetRestrictionRequest true "Category"
// @Success 200 {object} SlotView
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventories/{id}/slots/{index}/restriction [put]
func (h *Handlers) HandleSetRestriction() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := slotIndexParam(w, r)
		if !ok {
			return
		}
		var req SetRestrictionRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set restriction"); err != nil {
			return
		}
		category, err := domain.ParseItemCategory(req.Category)
		if err != nil {
			respondServiceError(w, r, "restrict", err)
			return
		}

		var view SlotView
		err = h.registry.WithInventory(chi.URLParam(r, "id"), func(inv *inventory.Inventory) error {
			if err := inv.SetRestriction(index, category); err != nil {
				return err
			}
			return fillSlotView(&view, inv, index)
		})
		if err != nil {
			respondServiceError(w, r, "restrict", err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

type DepositRequest struct {
	ItemID string `json:"item_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	Amount int    `json:"amount" validate:"min=1,max=100000"`
}

// HandleDeposit spreads an amount of an item over the inventory
// @Summary Deposit item
// @Description Spread an amount of an item over the inventory
// @Tags inventories
// @Accept json
// @Produce json
// @Param id path string true "Inventory ID"
// @Param request body DepositRequest true "Item and amount"
// @Success 200 {object} inventory.DepositResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventories/{id}/deposit [post]
func (h *Handlers) HandleDeposit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DepositRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Deposit"); err != nil {
			return
		}
		itemID := h.resolveItem(req.ItemID)

		var res inventory.DepositResult
		err := h.registry.WithInventory(chi.URLParam(r, "id"), func(inv *inventory.Inventory) error {
			var err error
			res, err = h.engine.DepositByName(inv, itemID, req.Amount)
			return err
		})
		if err != nil {
			respondServiceError(w, r, "deposit", err)
			return
		}
		respondJSON(w, http.StatusOK, res)
	}
}

type DepositAtRequest struct {
	Amount int `json:"amount" validate:"ne=0,min=-100000,max=100000"`
}

// LeftoverResponse reports how much of a request did not fit
type LeftoverResponse struct {
	Leftover int `json:"leftover"`
}

// HandleDepositAt adds to, or with a negative amount withdraws from, one stack
// @Summary Deposit into slot
// @Description Add to or withdraw from the stack at one slot
// @Tags inventories
// @Accept json
// @Produce json
// @Param id path string true "Inventory ID"
// @Param index path int true "Slot index"
// @Param request body DepositAtRequest true "Signed amount"
// @Success 200 {object} LeftoverResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventories/{id}/slots/{index}/deposit [post]
func (h *Handlers) HandleDepositAt() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := slotIndexParam(w, r)
		if !ok {
			return
		}
		var req DepositAtRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Deposit at slot"); err != nil {
			return
		}

		var leftover int
		err := h.registry.WithInventory(chi.URLParam(r, "id"), func(inv *inventory.Inventory) error {
			var err error
			leftover, err = h.engine.DepositByIndex(inv, index, req.Amount)
			return err
		})
		if err != nil {
			respondServiceError(w, r, "deposit_at", err)
			return
		}
		respondJSON(w, http.StatusOK, LeftoverResponse{Leftover: leftover})
	}
}

type InsertRequest struct {
	ItemID string `json:"item_id" validate:"required,max=64,excludesall=\x00\n\r\t"`
	Amount int    `json:"amount" validate:"min=1,max=9999"`
}

// AcceptedResponse reports whether a restriction-checked operation happened
type AcceptedResponse struct {
	Accepted bool `json:"accepted"`
}

// HandleInsert places a new stack into an empty slot
// @Summary Insert stack
// @Description Place a new stack into an empty slot
// @Tags inventories
// @Accept json
// @Produce json
// @Param id path string true "Inventory ID"
// @Param index path int true "Slot index"
// @Param request body InsertRequest true "Item and amount"
// @Success 200 {object} AcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventories/{id}/slots/{index}/insert [post]
func (h *Handlers) HandleInsert() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		index, ok := slotIndexParam(w, r)
		if !ok {
			return
		}
		var req InsertRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Insert"); err != nil {
			return
		}
		itemID := h.resolveItem(req.ItemID)
		contents := inventory.Slot{ItemID: itemID, Amount: req.Amount, Metadata: h.metadataFor(itemID)}

		var accepted bool
		err := h.registry.WithInventory(chi.URLParam(r, "id"), func(inv *inventory.Inventory) error {
			var err error
			accepted, err = h.engine.InsertAt(inv, index, contents)
			return err
		})
		if err != nil {
			respondServiceError(w, r, "insert", err)
			return
		}
		respondJSON(w, http.StatusOK, AcceptedResponse{Accepted: accepted})
	}
}

type SplitRequest struct {
	SourceIndex int `json:"source_index" validate:"min=0"`
	DestIndex   int `json:"dest_index" validate:"min=0"`
	Amount      int `json:"amount" validate:"min=1"`
}

// HandleSplit moves part of a stack into an empty slot of the same inventory
// @Summary Split stack
// @Description Move part of a stack into an empty slot of the same inventory
// @Tags inventories
// @Accept json
// @Produce json
// @Param id path string true "Inventory ID"
// @Param request body SplitRequest true "Slots and amount"
// @Success 200 {object} AcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventories/{id}/split [post]
func (h *Handlers) HandleSplit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SplitRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Split"); err != nil {
			return
		}

		var accepted bool
		err := h.registry.WithInventory(chi.URLParam(r, "id"), func(inv *inventory.Inventory) error {
			var err error
			accepted, err = h.engine.SplitStack(inv, req.SourceIndex, req.DestIndex, req.Amount)
			return err
		})
		if err != nil {
			respondServiceError(w, r, "split", err)
			return
		}
		respondJSON(w, http.StatusOK, AcceptedResponse{Accepted: accepted})
	}
}

func fillSlotView(view *SlotView, inv *inventory.Inventory, index int) error {
	s, err := inv.Slot(index)
	if err != nil {
		return err
	}
	row, col, err := inv.Position(index)
	if err != nil {
		return err
	}
	*view = SlotView{Index: index, Row: row, Col: col, Slot: s}
	return nil
}
