// Copyright (c) 2026 FitTrack Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"github.com/fittrack/fittrack/apierr"
	"github.com/fittrack/fittrack/models"
	"github.com/fittrack/fittrack/store"
	"github.com/fittrack/fittrack/validate"
)

type AccountService struct {
	accounts *store.AccountStore
}

func NewAccountService(accounts *store.AccountStore) *AccountService {
	return &AccountService{accounts: accounts}
}

// Create validates the request and persists a new account.
func (s *AccountService) Create(req models.AccountRequest) error {
	if err := validate.Account(req); err != nil {
		return err
	}
	account := models.Account{
		Name:   req.Name,
		Age:    req.Age,
		Weight: req.Weight,
		Height: req.Height,
	}
	return s.accounts.Create(&account)
}

// Get returns the account or a not-found failure.
func (s *AccountService) Get(id int) (*models.Account, error) {
	account, err := s.accounts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, apierr.NotFound("Account not found")
	}
	return account, nil
}

func (s *AccountService) List() ([]models.Account, error) {
	return s.accounts.List()
}

// Update replaces all mutable fields of an existing account. The identifier
// is preserved; updating a missing account is a not-found failure.
func (s *AccountService) Update(id int, req models.AccountRequest) error {
	if err := validate.Account(req); err != nil {
		return err
	}
	existing, err := s.accounts.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apierr.NotFound("Account not found")
	}

	existing.Name = req.Name
	existing.Age = req.Age
	existing.Weight = req.Weight
	existing.Height = req.Height
	return s.accounts.Update(existing)
}

// Delete confirms existence first; deleting an absent account is a
// not-found failure, so a second delete of the same id also fails.
func (s *AccountService) Delete(id int) error {
	existing, err := s.accounts.GetByID(id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apierr.NotFound("Account not found")
	}
	return s.accounts.Delete(id)
}
