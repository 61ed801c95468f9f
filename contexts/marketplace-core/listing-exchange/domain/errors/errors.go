package errors

import "errors"

var (
	ErrListingNotFound        = errors.New("listing not found")
	ErrLedgerEntryNotFound    = errors.New("ledger entry not found")
	ErrInvalidListingRequest  = errors.New("invalid listing request")
	ErrInvalidListFilter      = errors.New("invalid list filter")
	ErrInvalidItemType        = errors.New("invalid item type")
	ErrInvalidPurchaseRequest = errors.New("invalid purchase request")
	ErrInvalidAmount          = errors.New("amount must be greater than zero")
	ErrInvalidReportMonth     = errors.New("report month must be formatted YYYY-MM")
	ErrCreatorNotAuthorized   = errors.New("principal is not allowed to create listings")
	ErrNotListingOwner        = errors.New("principal does not own this listing")
	ErrAlreadyPublished       = errors.New("listing is already published")
	ErrDuplicateListing       = errors.New("listing id already exists")
)
