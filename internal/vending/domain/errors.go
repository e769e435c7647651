package domain

//region AccountNotFoundError

type AccountNotFoundError struct {
	Msg string
}

func (e *AccountNotFoundError) Error() string {
	return e.Msg
}

func (e *AccountNotFoundError) Is(target error) bool {
	_, ok := target.(*AccountNotFoundError)
	return ok
}

//endregion

//region ProductNotFoundError

type ProductNotFoundError struct {
	Msg string
}

func (e *ProductNotFoundError) Error() string {
	return e.Msg
}

func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

//endregion

//region AlreadyExistsError

type AlreadyExistsError struct {
	Msg string
}

func (e *AlreadyExistsError) Error() string {
	return e.Msg
}

func (e *AlreadyExistsError) Is(target error) bool {
	_, ok := target.(*AlreadyExistsError)
	return ok
}

//endregion

//region InvalidInputError

type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string {
	return e.Msg
}

func (e *InvalidInputError) Is(target error) bool {
	_, ok := target.(*InvalidInputError)
	return ok
}

//endregion

//region InsufficientBalanceError

type InsufficientBalanceError struct {
	Msg string
}

func (e *InsufficientBalanceError) Error() string {
	return e.Msg
}

func (e *InsufficientBalanceError) Is(target error) bool {
	_, ok := target.(*InsufficientBalanceError)
	return ok
}

//endregion

//region OwnershipViolationError

type OwnershipViolationError struct {
	Msg string
}

func (e *OwnershipViolationError) Error() string {
	return e.Msg
}

func (e *OwnershipViolationError) Is(target error) bool {
	_, ok := target.(*OwnershipViolationError)
	return ok
}

//endregion

//region OperationNotAllowedError

type OperationNotAllowedError struct {
	Msg string
}

func (e *OperationNotAllowedError) Error() string {
	return e.Msg
}

func (e *OperationNotAllowedError) Is(target error) bool {
	_, ok := target.(*OperationNotAllowedError)
	return ok
}

//endregion

//region CredentialsMismatchError

type CredentialsMismatchError struct {
	Msg string
}

func (e *CredentialsMismatchError) Error() string {
	return e.Msg
}

func (e *CredentialsMismatchError) Is(target error) bool {
	_, ok := target.(*CredentialsMismatchError)
	return ok
}

//endregion
