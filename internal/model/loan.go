package model

// статусы заявки на займ, которые присылает кредитор
const (
	LoanStatusAccepted  = "accepted"
	LoanStatusApproved  = "approved"
	LoanStatusReferred  = "referred"
	LoanStatusCancelled = "cancelled"
	LoanStatusExpired   = "expired"
	LoanStatusDeclined  = "declined"
)

type LoanOutcome int

const (
	LoanOutcomeInvalid LoanOutcome = iota
	LoanOutcomeAccepted
	LoanOutcomeCancelled
	LoanOutcomeDeclined
)

// ClassifyLoanStatus относит статус кредитора ровно к одному исходу.
// Незнакомые строки (в том числе в другом регистре) - LoanOutcomeInvalid.
func ClassifyLoanStatus(status string) LoanOutcome {
	switch status {
	case LoanStatusAccepted, LoanStatusApproved, LoanStatusReferred:
		return LoanOutcomeAccepted
	case LoanStatusCancelled, LoanStatusExpired:
		return LoanOutcomeCancelled
	case LoanStatusDeclined:
		return LoanOutcomeDeclined
	}

	return LoanOutcomeInvalid
}

func (o LoanOutcome) IsAccepted() bool {
	return o == LoanOutcomeAccepted
}

func (o LoanOutcome) IsCancelled() bool {
	return o == LoanOutcomeCancelled
}

func (o LoanOutcome) IsDeclined() bool {
	return o == LoanOutcomeDeclined
}

func (o LoanOutcome) IsValid() bool {
	return o != LoanOutcomeInvalid
}

func (o LoanOutcome) String() string {
	switch o {
	case LoanOutcomeAccepted:
		return "accepted"
	case LoanOutcomeCancelled:
		return "cancelled"
	case LoanOutcomeDeclined:
		return "declined"
	}

	return "invalid"
}
