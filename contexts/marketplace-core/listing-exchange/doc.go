// Package listingexchange implements the IdeaBazaar marketplace core:
// the published catalog of business ideas and freelance services, and the
// purchase ledger with its commission split.
//
// The module keeps domain/application logic decoupled from runtime/platform
// concerns through ports and adapter composition.
package listingexchange
