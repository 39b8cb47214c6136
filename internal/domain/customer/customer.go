package customer

// Address has no identity of its own and only exists inside an Account.
type Address struct {
	AddLine1 string `json:"addline1"`
	City     string `json:"city"`
}

type Account struct {
	AccountNumber string    `json:"accountnumber"`
	PaymentStatus string    `json:"paymentstatus"`
	Address       []Address `json:"address"`
}

type Customer struct {
	CustomerID string    `json:"customerID"`
	FirstName  string    `json:"firstname"`
	LastName   string    `json:"lastname"`
	Accounts   []Account `json:"accounts"`
}

// Clone returns a copy of the account that shares no slices with a.
func (a Account) Clone() Account {
	addresses := make([]Address, len(a.Address))
	copy(addresses, a.Address)
	return Account{
		AccountNumber: a.AccountNumber,
		PaymentStatus: a.PaymentStatus,
		Address:       addresses,
	}
}

// Clone returns a deep copy of the customer.
func (c Customer) Clone() Customer {
	accounts := make([]Account, len(c.Accounts))
	for i, acc := range c.Accounts {
		accounts[i] = acc.Clone()
	}
	return Customer{
		CustomerID: c.CustomerID,
		FirstName:  c.FirstName,
		LastName:   c.LastName,
		Accounts:   accounts,
	}
}
