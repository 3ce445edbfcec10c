package handler

import (
	"net/http"

	"github.com/osse101/stackgrid/internal/inventory"
)

// SlotPairRequest addresses a source and a destination slot, possibly in
// different inventories
type SlotPairRequest struct {
	SourceID    string `json:"source_id" validate:"required,max=64"`
	SourceIndex int    `json:"source_index" validate:"min=0"`
	DestID      string `json:"dest_id" validate:"required,max=64"`
	DestIndex   int    `json:"dest_index" validate:"min=0"`
	Amount      int    `json:"amount" validate:"min=0,max=100000"`
}

// TransferResponse reports how much of a transfer stayed in the source
type TransferResponse struct {
	Accepted bool `json:"accepted"`
	Leftover int  `json:"leftover"`
}

// withPair decodes a SlotPairRequest and runs fn with both inventories locked
func (h *Handlers) withPair(w http.ResponseWriter, r *http.Request, action string, fn func(req SlotPairRequest, src, dest *inventory.Inventory) error) bool {
	var req SlotPairRequest
	if err := DecodeAndValidateRequest(r, w, &req, action); err != nil {
		return false
	}
	err := h.registry.WithPair(req.SourceID, req.DestID, func(src, dest *inventory.Inventory) error {
		return fn(req, src, dest)
	})
	if err != nil {
		respondServiceError(w, r, action, err)
		return false
	}
	return true
}

// HandleSwap exchanges two stacks when both restrictions allow it
// @Summary Swap slots
// @Description Exchange two stacks when both restrictions allow it
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body SlotPairRequest true "Source and destination slots"
// @Success 200 {object} AcceptedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /swap [post]
func (h *Handlers) HandleSwap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var accepted bool
		ok := h.withPair(w, r, "Swap", func(req SlotPairRequest, src, dest *inventory.Inventory) error {
			var err error
			accepted, err = h.engine.Swap(src, req.SourceIndex, dest, req.DestIndex)
			return err
		})
		if ok {
			respondJSON(w, http.StatusOK, AcceptedResponse{Accepted: accepted})
		}
	}
}

// HandleCombine tops up the destination stack from the source. An amount of
// zero means the whole source stack.
// @Summary Combine stacks
// @Description Top up the destination stack from the source stack
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body SlotPairRequest true "Source and destination slots"
// @Success 200 {object} inventory.CombineResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /combine [post]
func (h *Handlers) HandleCombine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var res inventory.CombineResult
		ok := h.withPair(w, r, "Combine", func(req SlotPairRequest, src, dest *inventory.Inventory) error {
			amount := req.Amount
			if amount == 0 {
				s, err := src.Slot(req.SourceIndex)
				if err != nil {
					return err
				}
				amount = s.Amount
			}
			var err error
			res, err = h.engine.CombineStacks(dest, req.DestIndex, src, req.SourceIndex, amount)
			return err
		})
		if ok {
			respondJSON(w, http.StatusOK, res)
		}
	}
}

// HandleTransfer moves a stack, or part of it, into an empty slot. An amount
// of zero moves the whole stack.
// @Summary Transfer to empty slot
// @Description Move a stack, or part of it, into an empty slot
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body SlotPairRequest true "Source and destination slots"
// @Success 200 {object} TransferResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /transfer [post]
func (h *Handlers) HandleTransfer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var resp TransferResponse
		ok := h.withPair(w, r, "Transfer", func(req SlotPairRequest, src, dest *inventory.Inventory) error {
			snapshot, err := src.Slot(req.SourceIndex)
			if err != nil {
				return err
			}
			if req.Amount > 0 {
				snapshot.Amount = req.Amount
			}
			leftover, err := h.engine.TransferToEmptySlot(dest, req.DestIndex, src, req.SourceIndex, snapshot)
			if err != nil {
				return err
			}
			resp = TransferResponse{Accepted: leftover == 0, Leftover: leftover}
			return nil
		})
		if ok {
			respondJSON(w, http.StatusOK, resp)
		}
	}
}

// HandleMove resolves a drag of the source stack onto the destination slot
// @Summary Move slot
// @Description Drag the source stack onto the destination slot
// @Tags transfers
// @Accept json
// @Produce json
// @Param request body SlotPairRequest true "Source and destination slots"
// @Success 200 {object} inventory.MoveResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /move [post]
func (h *Handlers) HandleMove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var res inventory.MoveResult
		ok := h.withPair(w, r, "Move", func(req SlotPairRequest, src, dest *inventory.Inventory) error {
			var err error
			res, err = h.engine.MoveSlot(dest, req.DestIndex, src, req.SourceIndex)
			return err
		})
		if ok {
			respondJSON(w, http.StatusOK, res)
		}
	}
}
