package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/consorcio/internal/money"
)

var (
	ErrUnknownParticipant = errors.New("participant has no balance")
	ErrNotDebtor          = errors.New("participant does not owe money")
	ErrNoCreditors        = errors.New("no participant is owed money")
)

// Share is the part of a debt that goes to one creditor.
type Share struct {
	CreditorID string
	Amount     decimal.Decimal
}

// ProposeSettlement distributes everything the debtor owes across all
// current creditors, weighted by what each creditor is owed:
//
//	share_i = creditor_i.balance / sum(creditor balances) * debt
//
// Shares are rounded to cents and shares below one cent are dropped.
// This is a proportional rule; it does not minimise the number of transfers.
func ProposeSettlement(debtorID string, balances []MemberBalance) ([]Share, error) {
	var debtor *MemberBalance
	for i := range balances {
		if balances[i].ParticipantID == debtorID {
			debtor = &balances[i]
			break
		}
	}
	if debtor == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownParticipant, debtorID)
	}
	if !debtor.NetBalance.IsNegative() {
		return nil, ErrNotDebtor
	}

	owed := debtor.NetBalance.Neg()
	credit := decimal.Zero
	for _, b := range balances {
		if b.NetBalance.IsPositive() {
			credit = credit.Add(b.NetBalance)
		}
	}
	if credit.IsZero() {
		return nil, ErrNoCreditors
	}

	var shares []Share
	for _, b := range balances {
		if !b.NetBalance.IsPositive() {
			continue
		}
		amount := money.RoundCents(b.NetBalance.Div(credit).Mul(owed))
		if money.BelowCent(amount) {
			continue
		}
		shares = append(shares, Share{CreditorID: b.ParticipantID, Amount: amount})
	}

	return shares, nil
}
