package models

import (
	"errors"
	"fmt"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrTransactionNotFound = fmt.Errorf("%w transaction with this ID", ErrResourceNotFound)
	ErrWalletNotFound      = fmt.Errorf("%w wallet with this ID", ErrResourceNotFound)
	ErrDocumentNotFound    = fmt.Errorf("%w document for this user", ErrResourceNotFound)
)
