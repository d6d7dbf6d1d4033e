package leverage

// IncomeExpense holds the monthly cash flow figures and the net worth goal.
type IncomeExpense struct {
	MonthlyActiveIncome      Money `json:"monthlyActiveIncome"`
	MonthlyPassiveIncome     Money `json:"monthlyPassiveIncome"`
	MonthlyMortgagePayment   Money `json:"monthlyMortgagePayment"`
	MonthlyCreditPayment     Money `json:"monthlyCreditPayment"`
	MonthlyBaseLivingExpense Money `json:"monthlyBaseLivingExpense"`
	// FireGoal is the net worth targeted for financial independence.
	FireGoal          Money `json:"fireGoal"`
	UnusedCreditLimit Money `json:"unusedCreditLimit"`
}

// Income is the total monthly income.
func (ie IncomeExpense) Income() Money {
	return ie.MonthlyActiveIncome.Add(ie.MonthlyPassiveIncome)
}

// FixedPayments is the total of the fixed monthly outflows, interests excluded.
func (ie IncomeExpense) FixedPayments() Money {
	return Sum(ie.MonthlyMortgagePayment, ie.MonthlyCreditPayment, ie.MonthlyBaseLivingExpense)
}

// IncomeExpenseFields lists the field names accepted by [Snapshot.UpdateIncomeExpense].
var IncomeExpenseFields = []string{
	"monthlyActiveIncome",
	"monthlyPassiveIncome",
	"monthlyMortgagePayment",
	"monthlyCreditPayment",
	"monthlyBaseLivingExpense",
	"fireGoal",
	"unusedCreditLimit",
}

// field returns a pointer to the named field, nil if unknown.
func (ie *IncomeExpense) field(name string) *Money {
	switch name {
	case "monthlyActiveIncome":
		return &ie.MonthlyActiveIncome
	case "monthlyPassiveIncome":
		return &ie.MonthlyPassiveIncome
	case "monthlyMortgagePayment":
		return &ie.MonthlyMortgagePayment
	case "monthlyCreditPayment":
		return &ie.MonthlyCreditPayment
	case "monthlyBaseLivingExpense":
		return &ie.MonthlyBaseLivingExpense
	case "fireGoal":
		return &ie.FireGoal
	case "unusedCreditLimit":
		return &ie.UnusedCreditLimit
	}
	return nil
}
