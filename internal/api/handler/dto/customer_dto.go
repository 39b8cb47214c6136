package dto

import (
	"customer-graph-api/internal/domain/customer"
)

type AddressResponse struct {
	AddLine1 string `json:"addline1"`
	City     string `json:"city"`
}

type AccountResponse struct {
	AccountNumber string            `json:"accountnumber" validate:"required"`
	PaymentStatus string            `json:"paymentstatus"`
	Address       []AddressResponse `json:"address" validate:"required,dive"`
}

type CustomerResponse struct {
	CustomerID string            `json:"customerID" validate:"required"`
	FirstName  string            `json:"firstname"`
	LastName   string            `json:"lastname"`
	Accounts   []AccountResponse `json:"accounts" validate:"required,dive"`
}

func NewAccountResponse(acc *customer.Account) AccountResponse {
	if acc == nil {
		return AccountResponse{}
	}

	addresses := make([]AddressResponse, len(acc.Address))
	for i, addr := range acc.Address {
		addresses[i] = AddressResponse{AddLine1: addr.AddLine1, City: addr.City}
	}

	return AccountResponse{
		AccountNumber: acc.AccountNumber,
		PaymentStatus: acc.PaymentStatus,
		Address:       addresses,
	}
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}

	accounts := make([]AccountResponse, len(cust.Accounts))
	for i := range cust.Accounts {
		accounts[i] = NewAccountResponse(&cust.Accounts[i])
	}

	return CustomerResponse{
		CustomerID: cust.CustomerID,
		FirstName:  cust.FirstName,
		LastName:   cust.LastName,
		Accounts:   accounts,
	}
}
