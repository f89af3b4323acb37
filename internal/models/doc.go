// Package models defines the core domain models for the consorcio service.
//
// # Models
//
//   - Participant: a unit owner or tenant taking part in the shared costs
//   - Expense: a community cost paid by one participant on behalf of all
//   - Payment: a direct transfer from a debtor to a creditor (a settlement)
//   - User: login credentials linked to a participant
//
// # References
//
// Every relationship is expressed with participant IDs (UUID strings).
// Participant names are only joined in for display, so two members
// sharing a name never get their balances mixed up.
//
// # Amounts
//
// Amounts are shopspring decimals in a single currency. Settlement
// pseudo-expenses use the category CategorySettlement and never take
// part in community aggregates.
package models
