// Package principaldirectory holds IdeaBazaar accounts: who a principal is,
// their role and subscription tier, and whether they may create listings.
package principaldirectory
